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

package dataplex

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Dataplex.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateLake,
		cmdGetLake,
		cmdListLakes,
		cmdDeleteLake,
		cmdCreateEntryType,
		cmdLookupEntry,
	}
}

// lakeRun is the base for subcommands addressing one lake.
type lakeRun struct {
	samplecli.Base
	location string
	lakeID   string
}

func (r *lakeRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us-central1", "Location of the lake.")
	r.Flags.StringVar(&r.lakeID, "lake-id", "", "ID of the lake.")
}

func (r *lakeRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("lake-id", r.lakeID)
}

func (r *lakeRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *lakeRun) lakeName() string {
	return r.parent() + "/lakes/" + r.lakeID
}

var cmdCreateLake = &subcommands.Command{
	UsageLine: "dataplex-create-lake -lake-id ID [-location L] [-project ID]",
	ShortDesc: "creates a lake",
	CommandRun: func() subcommands.CommandRun {
		r := &createLakeRun{}
		r.init()
		return r
	},
}

type createLakeRun struct{ lakeRun }

func (r *createLakeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createLake(a.GetOut(), r.parent(), r.lakeID))
}

var cmdGetLake = &subcommands.Command{
	UsageLine: "dataplex-get-lake -lake-id ID [-location L] [-project ID]",
	ShortDesc: "fetches a lake",
	CommandRun: func() subcommands.CommandRun {
		r := &getLakeRun{}
		r.init()
		return r
	},
}

type getLakeRun struct{ lakeRun }

func (r *getLakeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getLake(a.GetOut(), r.lakeName()))
}

var cmdListLakes = &subcommands.Command{
	UsageLine: "dataplex-list-lakes [-location L] [-project ID]",
	ShortDesc: "prints every lake in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listLakesRun{}
		r.init()
		return r
	},
}

type listLakesRun struct{ lakeRun }

func (r *listLakesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listLakes(a.GetOut(), r.parent()))
}

var cmdDeleteLake = &subcommands.Command{
	UsageLine: "dataplex-delete-lake -lake-id ID [-location L] [-project ID]",
	ShortDesc: "deletes an empty lake",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteLakeRun{}
		r.init()
		return r
	},
}

type deleteLakeRun struct{ lakeRun }

func (r *deleteLakeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteLake(a.GetOut(), r.lakeName()))
}

var cmdCreateEntryType = &subcommands.Command{
	UsageLine: "dataplex-create-entry-type -entry-type-id ID [-project ID]",
	ShortDesc: "creates a catalog entry type",
	CommandRun: func() subcommands.CommandRun {
		r := &createEntryTypeRun{}
		r.Init()
		r.Flags.StringVar(&r.entryTypeID, "entry-type-id", "", "ID of the entry type.")
		return r
	},
}

type createEntryTypeRun struct {
	samplecli.Base
	entryTypeID string
}

func (r *createEntryTypeRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("entry-type-id", r.entryTypeID); err != nil {
		return r.Done(ctx, a, err)
	}
	parent := fmt.Sprintf("projects/%s/locations/global", r.ProjectID)
	return r.Done(ctx, a, createEntryType(a.GetOut(), parent, r.entryTypeID))
}

var cmdLookupEntry = &subcommands.Command{
	UsageLine: "dataplex-lookup-entry -entry NAME [-project ID]",
	ShortDesc: "resolves a catalog entry by resource name",
	CommandRun: func() subcommands.CommandRun {
		r := &lookupEntryRun{}
		r.Init()
		r.Flags.StringVar(&r.entry, "entry", "", "Full resource name of the entry.")
		return r
	},
}

type lookupEntryRun struct {
	samplecli.Base
	entry string
}

func (r *lookupEntryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("entry", r.entry); err != nil {
		return r.Done(ctx, a, err)
	}
	location := fmt.Sprintf("projects/%s/locations/global", r.ProjectID)
	return r.Done(ctx, a, lookupEntry(a.GetOut(), location, r.entry))
}
