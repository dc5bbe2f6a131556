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

package dlp

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Sensitive Data Protection.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdInspectString,
		cmdDeidentifyMasking,
		cmdListInfoTypes,
		cmdCreateInspectTemplate,
	}
}

// dlpRun is the base for DLP subcommands running in the global location.
type dlpRun struct {
	samplecli.Base
}

func (r *dlpRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/global", r.ProjectID)
}

var cmdInspectString = &subcommands.Command{
	UsageLine: "dlp-inspect-string -text TEXT [-project ID]",
	ShortDesc: "scans text for sensitive data",
	CommandRun: func() subcommands.CommandRun {
		r := &inspectStringRun{}
		r.Init()
		r.Flags.StringVar(&r.text, "text", "", "Text to inspect.")
		return r
	},
}

type inspectStringRun struct {
	dlpRun
	text string
}

func (r *inspectStringRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("text", r.text); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, inspectString(a.GetOut(), r.parent(), r.text))
}

var cmdDeidentifyMasking = &subcommands.Command{
	UsageLine: "dlp-deidentify-masking -text TEXT [-project ID]",
	ShortDesc: "masks sensitive data in text",
	CommandRun: func() subcommands.CommandRun {
		r := &deidentifyMaskingRun{}
		r.Init()
		r.Flags.StringVar(&r.text, "text", "", "Text to de-identify.")
		return r
	},
}

type deidentifyMaskingRun struct {
	dlpRun
	text string
}

func (r *deidentifyMaskingRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("text", r.text); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deidentifyMasking(a.GetOut(), r.parent(), r.text))
}

var cmdListInfoTypes = &subcommands.Command{
	UsageLine: "dlp-list-info-types",
	ShortDesc: "prints the supported info type detectors",
	CommandRun: func() subcommands.CommandRun {
		r := &listInfoTypesRun{}
		r.Init()
		return r
	},
}

type listInfoTypesRun struct{ dlpRun }

func (r *listInfoTypesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	return r.Done(ctx, a, listInfoTypes(a.GetOut()))
}

var cmdCreateInspectTemplate = &subcommands.Command{
	UsageLine: "dlp-create-inspect-template -template-id ID [-project ID]",
	ShortDesc: "saves an inspect configuration as a template",
	CommandRun: func() subcommands.CommandRun {
		r := &createInspectTemplateRun{}
		r.Init()
		r.Flags.StringVar(&r.templateID, "template-id", "", "ID of the template.")
		return r
	},
}

type createInspectTemplateRun struct {
	dlpRun
	templateID string
}

func (r *createInspectTemplateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("template-id", r.templateID); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createInspectTemplate(a.GetOut(), r.parent(), r.templateID))
}
