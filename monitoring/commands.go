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

package monitoring

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Monitoring.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateUptimeCheck,
		cmdListUptimeChecks,
		cmdDeleteUptimeCheck,
		cmdWriteTimeSeries,
		cmdListTimeSeries,
	}
}

var cmdCreateUptimeCheck = &subcommands.Command{
	UsageLine: "monitoring-create-uptime-check -display-name NAME -host HOST [-project ID]",
	ShortDesc: "creates an HTTPS uptime check",
	CommandRun: func() subcommands.CommandRun {
		r := &createUptimeCheckRun{}
		r.Init()
		r.Flags.StringVar(&r.displayName, "display-name", "", "Display name for the check.")
		r.Flags.StringVar(&r.host, "host", "", "Host the check probes.")
		return r
	},
}

type createUptimeCheckRun struct {
	samplecli.Base
	displayName string
	host        string
}

func (r *createUptimeCheckRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("display-name", r.displayName); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("host", r.host); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createUptimeCheck(a.GetOut(), r.ProjectID, r.displayName, r.host))
}

var cmdListUptimeChecks = &subcommands.Command{
	UsageLine: "monitoring-list-uptime-checks [-project ID]",
	ShortDesc: "prints every uptime check in the project",
	CommandRun: func() subcommands.CommandRun {
		r := &listUptimeChecksRun{}
		r.Init()
		return r
	},
}

type listUptimeChecksRun struct{ samplecli.Base }

func (r *listUptimeChecksRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listUptimeChecks(a.GetOut(), r.ProjectID))
}

var cmdDeleteUptimeCheck = &subcommands.Command{
	UsageLine: "monitoring-delete-uptime-check -check-id ID [-project ID]",
	ShortDesc: "deletes an uptime check",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteUptimeCheckRun{}
		r.Init()
		r.Flags.StringVar(&r.checkID, "check-id", "", "ID of the uptime check config.")
		return r
	},
}

type deleteUptimeCheckRun struct {
	samplecli.Base
	checkID string
}

func (r *deleteUptimeCheckRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("check-id", r.checkID); err != nil {
		return r.Done(ctx, a, err)
	}
	name := "projects/" + r.ProjectID + "/uptimeCheckConfigs/" + r.checkID
	return r.Done(ctx, a, deleteUptimeCheck(a.GetOut(), name))
}

var cmdWriteTimeSeries = &subcommands.Command{
	UsageLine: "monitoring-write-timeseries [-value V] [-project ID]",
	ShortDesc: "writes one point of a custom metric",
	CommandRun: func() subcommands.CommandRun {
		r := &writeTimeSeriesRun{}
		r.Init()
		r.Flags.Float64Var(&r.value, "value", 3.14, "Gauge value to write.")
		return r
	},
}

type writeTimeSeriesRun struct {
	samplecli.Base
	value float64
}

func (r *writeTimeSeriesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, writeTimeSeries(a.GetOut(), r.ProjectID, r.value))
}

var cmdListTimeSeries = &subcommands.Command{
	UsageLine: "monitoring-list-timeseries [-project ID]",
	ShortDesc: "prints recent points of the custom metric",
	CommandRun: func() subcommands.CommandRun {
		r := &listTimeSeriesRun{}
		r.Init()
		return r
	},
}

type listTimeSeriesRun struct{ samplecli.Base }

func (r *listTimeSeriesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listTimeSeries(a.GetOut(), r.ProjectID))
}
