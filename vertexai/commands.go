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

package vertexai

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Vertex AI.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{cmdGenerateContent}
}

var cmdGenerateContent = &subcommands.Command{
	UsageLine: "vertexai-generate-content -prompt P [-location L] [-project ID]",
	ShortDesc: "sends a prompt to Gemini",
	CommandRun: func() subcommands.CommandRun {
		r := &generateContentRun{}
		r.Init()
		r.Flags.StringVar(&r.location, "location", "us-central1", "Vertex AI region.")
		r.Flags.StringVar(&r.prompt, "prompt", "", "Text prompt to send.")
		return r
	},
}

type generateContentRun struct {
	samplecli.Base
	location string
	prompt   string
}

func (r *generateContentRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("prompt", r.prompt); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, generateContent(a.GetOut(), r.ProjectID, r.location, r.prompt))
}
