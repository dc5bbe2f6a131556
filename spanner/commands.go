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

package spanner

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Spanner.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdInsertData,
		cmdQueryData,
		cmdReadData,
	}
}

// dbRun is the base for subcommands addressing one database.
type dbRun struct {
	samplecli.Base
	instance string
	database string
}

func (r *dbRun) init() {
	r.Init()
	r.Flags.StringVar(&r.instance, "instance", "", "ID of the Spanner instance.")
	r.Flags.StringVar(&r.database, "database", "", "ID of the database.")
}

func (r *dbRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	if err := samplecli.RequireFlag("instance", r.instance); err != nil {
		return err
	}
	return samplecli.RequireFlag("database", r.database)
}

func (r *dbRun) dbName() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", r.ProjectID, r.instance, r.database)
}

var cmdInsertData = &subcommands.Command{
	UsageLine: "spanner-insert-data -instance I -database D [-project ID]",
	ShortDesc: "inserts example rows into Singers",
	CommandRun: func() subcommands.CommandRun {
		r := &insertDataRun{}
		r.init()
		return r
	},
}

type insertDataRun struct{ dbRun }

func (r *insertDataRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, insertData(a.GetOut(), r.dbName()))
}

var cmdQueryData = &subcommands.Command{
	UsageLine: "spanner-query-data -instance I -database D [-project ID]",
	ShortDesc: "queries Singers with SQL",
	CommandRun: func() subcommands.CommandRun {
		r := &queryDataRun{}
		r.init()
		return r
	},
}

type queryDataRun struct{ dbRun }

func (r *queryDataRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, queryData(a.GetOut(), r.dbName()))
}

var cmdReadData = &subcommands.Command{
	UsageLine: "spanner-read-data -instance I -database D [-project ID]",
	ShortDesc: "reads Singers by key",
	CommandRun: func() subcommands.CommandRun {
		r := &readDataRun{}
		r.init()
		return r
	},
}

type readDataRun struct{ dbRun }

func (r *readDataRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, readData(a.GetOut(), r.dbName()))
}
