// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package computemetadata

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for the GCE metadata server.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdGetProjectID,
		cmdGetInstanceMetadata,
	}
}

var cmdGetProjectID = &subcommands.Command{
	UsageLine: "computemetadata-get-project-id",
	ShortDesc: "prints the VM's project ID",
	CommandRun: func() subcommands.CommandRun {
		r := &getProjectIDRun{}
		r.Init()
		return r
	},
}

type getProjectIDRun struct{ samplecli.Base }

func (r *getProjectIDRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	return r.Done(ctx, a, printProjectID(a.GetOut(), nil))
}

var cmdGetInstanceMetadata = &subcommands.Command{
	UsageLine: "computemetadata-get-instance",
	ShortDesc: "prints the VM's name and zone",
	CommandRun: func() subcommands.CommandRun {
		r := &getInstanceMetadataRun{}
		r.Init()
		return r
	},
}

type getInstanceMetadataRun struct{ samplecli.Base }

func (r *getInstanceMetadataRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	return r.Done(ctx, a, printInstanceMetadata(a.GetOut(), nil))
}
