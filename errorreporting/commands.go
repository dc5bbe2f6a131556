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

package errorreporting

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Error Reporting.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdReportError,
		cmdReportPanic,
	}
}

// serviceRun is the base for subcommands reporting under one service name.
type serviceRun struct {
	samplecli.Base
	service string
}

func (r *serviceRun) init() {
	r.Init()
	r.Flags.StringVar(&r.service, "service", "go-sample", "Service name events are filed under.")
}

var cmdReportError = &subcommands.Command{
	UsageLine: "errorreporting-report-error [-service S] [-project ID]",
	ShortDesc: "reports one error event",
	CommandRun: func() subcommands.CommandRun {
		r := &reportErrorRun{}
		r.init()
		return r
	},
}

type reportErrorRun struct{ serviceRun }

func (r *reportErrorRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, reportError(a.GetOut(), r.ProjectID, r.service))
}

var cmdReportPanic = &subcommands.Command{
	UsageLine: "errorreporting-report-panic [-service S] [-project ID]",
	ShortDesc: "recovers a panic and reports it",
	CommandRun: func() subcommands.CommandRun {
		r := &reportPanicRun{}
		r.init()
		return r
	},
}

type reportPanicRun struct{ serviceRun }

func (r *reportPanicRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, reportPanic(a.GetOut(), r.ProjectID, r.service, func() {
		panic("demonstration panic")
	}))
}
