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

package parametermanager

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Parameter Manager.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateParam,
		cmdCreateParamVersion,
		cmdGetParam,
		cmdRenderParamVersion,
		cmdListParams,
		cmdDeleteParam,
	}
}

// paramRun is the base for subcommands addressing one parameter by ID.
type paramRun struct {
	samplecli.Base
	paramID string
}

func (r *paramRun) init() {
	r.Init()
	r.Flags.StringVar(&r.paramID, "param-id", "", "ID of the parameter within the project.")
}

func (r *paramRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("param-id", r.paramID)
}

func (r *paramRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/global", r.ProjectID)
}

func (r *paramRun) paramName() string {
	return r.parent() + "/parameters/" + r.paramID
}

var cmdCreateParam = &subcommands.Command{
	UsageLine: "parametermanager-create-param -param-id ID [-project ID]",
	ShortDesc: "creates a JSON-format parameter",
	CommandRun: func() subcommands.CommandRun {
		r := &createParamRun{}
		r.init()
		return r
	},
}

type createParamRun struct{ paramRun }

func (r *createParamRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createParam(a.GetOut(), r.parent(), r.paramID))
}

var cmdCreateParamVersion = &subcommands.Command{
	UsageLine: "parametermanager-create-param-version -param-id ID -version-id V -payload JSON [-project ID]",
	ShortDesc: "adds a version with a JSON payload to a parameter",
	CommandRun: func() subcommands.CommandRun {
		r := &createParamVersionRun{}
		r.init()
		r.Flags.StringVar(&r.versionID, "version-id", "", "ID of the new version.")
		r.Flags.StringVar(&r.payload, "payload", "", "JSON payload for the version.")
		return r
	},
}

type createParamVersionRun struct {
	paramRun
	versionID string
	payload   string
}

func (r *createParamVersionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("version-id", r.versionID); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("payload", r.payload); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createParamVersion(a.GetOut(), r.paramName(), r.versionID, r.payload))
}

var cmdGetParam = &subcommands.Command{
	UsageLine: "parametermanager-get-param -param-id ID [-project ID]",
	ShortDesc: "fetches a parameter's metadata",
	CommandRun: func() subcommands.CommandRun {
		r := &getParamRun{}
		r.init()
		return r
	},
}

type getParamRun struct{ paramRun }

func (r *getParamRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getParam(a.GetOut(), r.paramName()))
}

var cmdRenderParamVersion = &subcommands.Command{
	UsageLine: "parametermanager-render-param-version -param-id ID -version-id V [-project ID]",
	ShortDesc: "renders a parameter version, resolving secret references",
	CommandRun: func() subcommands.CommandRun {
		r := &renderParamVersionRun{}
		r.init()
		r.Flags.StringVar(&r.versionID, "version-id", "", "ID of the version to render.")
		return r
	},
}

type renderParamVersionRun struct {
	paramRun
	versionID string
}

func (r *renderParamVersionRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("version-id", r.versionID); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, renderParamVersion(a.GetOut(), r.paramName()+"/versions/"+r.versionID))
}

var cmdListParams = &subcommands.Command{
	UsageLine: "parametermanager-list-params [-project ID]",
	ShortDesc: "prints every parameter in the global location",
	CommandRun: func() subcommands.CommandRun {
		r := &listParamsRun{}
		r.Init()
		return r
	},
}

type listParamsRun struct{ paramRun }

func (r *listParamsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listParams(a.GetOut(), r.parent()))
}

var cmdDeleteParam = &subcommands.Command{
	UsageLine: "parametermanager-delete-param -param-id ID [-project ID]",
	ShortDesc: "deletes a parameter and its versions",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteParamRun{}
		r.init()
		return r
	},
}

type deleteParamRun struct{ paramRun }

func (r *deleteParamRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteParam(a.GetOut(), r.paramName()))
}
