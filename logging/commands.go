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

package logging

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Logging.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdWriteEntry,
		cmdWriteStructuredEntry,
		cmdListEntries,
	}
}

// logRun is the base for subcommands addressing one log.
type logRun struct {
	samplecli.Base
	logID string
}

func (r *logRun) init() {
	r.Init()
	r.Flags.StringVar(&r.logID, "log-id", "my-log", "ID of the log.")
}

var cmdWriteEntry = &subcommands.Command{
	UsageLine: "logging-write-entry -text T [-log-id ID] [-project ID]",
	ShortDesc: "writes a text log entry",
	CommandRun: func() subcommands.CommandRun {
		r := &writeEntryRun{}
		r.init()
		r.Flags.StringVar(&r.text, "text", "", "Text payload to write.")
		return r
	},
}

type writeEntryRun struct {
	logRun
	text string
}

func (r *writeEntryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("text", r.text); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, writeEntry(a.GetOut(), r.ProjectID, r.logID, r.text))
}

var cmdWriteStructuredEntry = &subcommands.Command{
	UsageLine: "logging-write-structured-entry -message M [-log-id ID] [-project ID]",
	ShortDesc: "writes a JSON log entry",
	CommandRun: func() subcommands.CommandRun {
		r := &writeStructuredEntryRun{}
		r.init()
		r.Flags.StringVar(&r.message, "message", "", "Message field of the JSON payload.")
		return r
	},
}

type writeStructuredEntryRun struct {
	logRun
	message string
}

func (r *writeStructuredEntryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("message", r.message); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, writeStructuredEntry(a.GetOut(), r.ProjectID, r.logID, r.message))
}

var cmdListEntries = &subcommands.Command{
	UsageLine: "logging-list-entries [-log-id ID] [-project ID]",
	ShortDesc: "prints a log's entries",
	CommandRun: func() subcommands.CommandRun {
		r := &listEntriesRun{}
		r.init()
		return r
	},
}

type listEntriesRun struct{ logRun }

func (r *listEntriesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listEntries(a.GetOut(), r.ProjectID, r.logID))
}
