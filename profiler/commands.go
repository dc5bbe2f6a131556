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

package profiler

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Profiler.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{cmdStartAgent}
}

var cmdStartAgent = &subcommands.Command{
	UsageLine: "profiler-start-agent [-service S] [-project ID]",
	ShortDesc: "starts the profiling agent",
	CommandRun: func() subcommands.CommandRun {
		r := &startAgentRun{}
		r.Init()
		r.Flags.StringVar(&r.service, "service", "go-sample", "Service name profiles are filed under.")
		return r
	},
}

type startAgentRun struct {
	samplecli.Base
	service string
}

func (r *startAgentRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, startAgent(a.GetOut(), r.ProjectID, r.service))
}
