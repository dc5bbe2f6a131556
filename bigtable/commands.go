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

package bigtable

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Bigtable.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateTable,
		cmdWriteRow,
		cmdReadRow,
	}
}

// tableRun is the base for subcommands addressing one table.
type tableRun struct {
	samplecli.Base
	instance string
	table    string
}

func (r *tableRun) init() {
	r.Init()
	r.Flags.StringVar(&r.instance, "instance", "", "ID of the Bigtable instance.")
	r.Flags.StringVar(&r.table, "table", "greetings", "Name of the table.")
}

func (r *tableRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("instance", r.instance)
}

var cmdCreateTable = &subcommands.Command{
	UsageLine: "bigtable-create-table -instance I [-table T] [-project ID]",
	ShortDesc: "creates a table",
	CommandRun: func() subcommands.CommandRun {
		r := &createTableRun{}
		r.init()
		return r
	},
}

type createTableRun struct{ tableRun }

func (r *createTableRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createTable(a.GetOut(), r.ProjectID, r.instance, r.table))
}

var cmdWriteRow = &subcommands.Command{
	UsageLine: "bigtable-write-row -instance I [-table T] [-row-key K] [-value V] [-project ID]",
	ShortDesc: "writes one row",
	CommandRun: func() subcommands.CommandRun {
		r := &writeRowRun{}
		r.init()
		r.Flags.StringVar(&r.rowKey, "row-key", "greeting0", "Key of the row.")
		r.Flags.StringVar(&r.value, "value", "Hello, Bigtable!", "Cell value to write.")
		return r
	},
}

type writeRowRun struct {
	tableRun
	rowKey string
	value  string
}

func (r *writeRowRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, writeRow(a.GetOut(), r.ProjectID, r.instance, r.table, r.rowKey, r.value))
}

var cmdReadRow = &subcommands.Command{
	UsageLine: "bigtable-read-row -instance I [-table T] [-row-key K] [-project ID]",
	ShortDesc: "reads one row by key",
	CommandRun: func() subcommands.CommandRun {
		r := &readRowRun{}
		r.init()
		r.Flags.StringVar(&r.rowKey, "row-key", "greeting0", "Key of the row.")
		return r
	},
}

type readRowRun struct {
	tableRun
	rowKey string
}

func (r *readRowRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, readRow(a.GetOut(), r.ProjectID, r.instance, r.table, r.rowKey))
}
