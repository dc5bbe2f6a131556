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

package eventarc

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Eventarc.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateTrigger,
		cmdGetTrigger,
		cmdListTriggers,
		cmdDeleteTrigger,
	}
}

// triggerRun is the base for subcommands addressing one trigger.
type triggerRun struct {
	samplecli.Base
	location  string
	triggerID string
}

func (r *triggerRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us-central1", "Location of the trigger.")
	r.Flags.StringVar(&r.triggerID, "trigger-id", "", "ID of the trigger.")
}

func (r *triggerRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("trigger-id", r.triggerID)
}

func (r *triggerRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *triggerRun) triggerName() string {
	return r.parent() + "/triggers/" + r.triggerID
}

var cmdCreateTrigger = &subcommands.Command{
	UsageLine: "eventarc-create-trigger -trigger-id ID -service SVC [-location L] [-project ID]",
	ShortDesc: "creates a Pub/Sub trigger routing to a Cloud Run service",
	CommandRun: func() subcommands.CommandRun {
		r := &createTriggerRun{}
		r.init()
		r.Flags.StringVar(&r.service, "service", "", "Cloud Run service to route events to.")
		return r
	},
}

type createTriggerRun struct {
	triggerRun
	service string
}

func (r *createTriggerRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("service", r.service); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createTrigger(a.GetOut(), r.parent(), r.triggerID, r.service))
}

var cmdGetTrigger = &subcommands.Command{
	UsageLine: "eventarc-get-trigger -trigger-id ID [-location L] [-project ID]",
	ShortDesc: "fetches a trigger",
	CommandRun: func() subcommands.CommandRun {
		r := &getTriggerRun{}
		r.init()
		return r
	},
}

type getTriggerRun struct{ triggerRun }

func (r *getTriggerRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getTrigger(a.GetOut(), r.triggerName()))
}

var cmdListTriggers = &subcommands.Command{
	UsageLine: "eventarc-list-triggers [-location L] [-project ID]",
	ShortDesc: "prints every trigger in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listTriggersRun{}
		r.init()
		return r
	},
}

type listTriggersRun struct{ triggerRun }

func (r *listTriggersRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listTriggers(a.GetOut(), r.parent()))
}

var cmdDeleteTrigger = &subcommands.Command{
	UsageLine: "eventarc-delete-trigger -trigger-id ID [-location L] [-project ID]",
	ShortDesc: "deletes a trigger",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteTriggerRun{}
		r.init()
		return r
	},
}

type deleteTriggerRun struct{ triggerRun }

func (r *deleteTriggerRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteTrigger(a.GetOut(), r.triggerName()))
}
