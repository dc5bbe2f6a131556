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

package datastore

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Datastore.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdUpsertEntity,
		cmdLookupEntity,
		cmdQueryTasks,
		cmdDeleteEntity,
	}
}

// taskRun is the base for subcommands addressing one Task entity.
type taskRun struct {
	samplecli.Base
	name string
}

func (r *taskRun) init() {
	r.Init()
	r.Flags.StringVar(&r.name, "name", "sampletask", "Key name of the task.")
}

var cmdUpsertEntity = &subcommands.Command{
	UsageLine: "datastore-upsert-entity -description D [-name N] [-project ID]",
	ShortDesc: "saves a task",
	CommandRun: func() subcommands.CommandRun {
		r := &upsertEntityRun{}
		r.init()
		r.Flags.StringVar(&r.description, "description", "", "Description of the task.")
		return r
	},
}

type upsertEntityRun struct {
	taskRun
	description string
}

func (r *upsertEntityRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("description", r.description); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, upsertEntity(a.GetOut(), r.ProjectID, r.name, r.description))
}

var cmdLookupEntity = &subcommands.Command{
	UsageLine: "datastore-lookup-entity [-name N] [-project ID]",
	ShortDesc: "reads a task by key",
	CommandRun: func() subcommands.CommandRun {
		r := &lookupEntityRun{}
		r.init()
		return r
	},
}

type lookupEntityRun struct{ taskRun }

func (r *lookupEntityRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, lookupEntity(a.GetOut(), r.ProjectID, r.name))
}

var cmdQueryTasks = &subcommands.Command{
	UsageLine: "datastore-query-tasks [-project ID]",
	ShortDesc: "prints tasks that are not done",
	CommandRun: func() subcommands.CommandRun {
		r := &queryTasksRun{}
		r.Init()
		return r
	},
}

type queryTasksRun struct{ samplecli.Base }

func (r *queryTasksRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, queryTasks(a.GetOut(), r.ProjectID))
}

var cmdDeleteEntity = &subcommands.Command{
	UsageLine: "datastore-delete-entity [-name N] [-project ID]",
	ShortDesc: "deletes a task",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteEntityRun{}
		r.init()
		return r
	},
}

type deleteEntityRun struct{ taskRun }

func (r *deleteEntityRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteEntity(a.GetOut(), r.ProjectID, r.name))
}
