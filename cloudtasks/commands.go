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

package cloudtasks

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Tasks.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateQueue,
		cmdCreateHTTPTask,
		cmdListQueues,
		cmdDeleteQueue,
	}
}

// queueRun is the base for subcommands addressing one queue.
type queueRun struct {
	samplecli.Base
	location string
	queueID  string
}

func (r *queueRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us-central1", "Location of the queue.")
	r.Flags.StringVar(&r.queueID, "queue-id", "", "ID of the queue.")
}

func (r *queueRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("queue-id", r.queueID)
}

func (r *queueRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *queueRun) queueName() string {
	return r.parent() + "/queues/" + r.queueID
}

var cmdCreateQueue = &subcommands.Command{
	UsageLine: "cloudtasks-create-queue -queue-id ID [-location L] [-project ID]",
	ShortDesc: "creates a queue",
	CommandRun: func() subcommands.CommandRun {
		r := &createQueueRun{}
		r.init()
		return r
	},
}

type createQueueRun struct{ queueRun }

func (r *createQueueRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createQueue(a.GetOut(), r.parent(), r.queueID))
}

var cmdCreateHTTPTask = &subcommands.Command{
	UsageLine: "cloudtasks-create-http-task -queue-id ID -url URL [-message M] [-location L] [-project ID]",
	ShortDesc: "enqueues an HTTP task",
	CommandRun: func() subcommands.CommandRun {
		r := &createHTTPTaskRun{}
		r.init()
		r.Flags.StringVar(&r.url, "url", "", "URL the task POSTs to when dispatched.")
		r.Flags.StringVar(&r.message, "message", "hello", "Body of the task request.")
		return r
	},
}

type createHTTPTaskRun struct {
	queueRun
	url     string
	message string
}

func (r *createHTTPTaskRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("url", r.url); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createHTTPTask(a.GetOut(), r.queueName(), r.url, r.message))
}

var cmdListQueues = &subcommands.Command{
	UsageLine: "cloudtasks-list-queues [-location L] [-project ID]",
	ShortDesc: "prints every queue in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listQueuesRun{}
		r.init()
		return r
	},
}

type listQueuesRun struct{ queueRun }

func (r *listQueuesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listQueues(a.GetOut(), r.parent()))
}

var cmdDeleteQueue = &subcommands.Command{
	UsageLine: "cloudtasks-delete-queue -queue-id ID [-location L] [-project ID]",
	ShortDesc: "deletes a queue",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteQueueRun{}
		r.init()
		return r
	},
}

type deleteQueueRun struct{ queueRun }

func (r *deleteQueueRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteQueue(a.GetOut(), r.queueName()))
}
