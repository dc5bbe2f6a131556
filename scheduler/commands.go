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

package scheduler

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Scheduler.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateJob,
		cmdListJobs,
		cmdPauseJob,
		cmdDeleteJob,
	}
}

// jobRun is the base for subcommands addressing one job.
type jobRun struct {
	samplecli.Base
	location string
	jobID    string
}

func (r *jobRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us-central1", "Location of the job.")
	r.Flags.StringVar(&r.jobID, "job-id", "", "ID of the job.")
}

func (r *jobRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("job-id", r.jobID)
}

func (r *jobRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *jobRun) jobName() string {
	return r.parent() + "/jobs/" + r.jobID
}

var cmdCreateJob = &subcommands.Command{
	UsageLine: "scheduler-create-job -job-id ID -url URL [-schedule CRON] [-location L] [-project ID]",
	ShortDesc: "creates a cron job that POSTs to a URL",
	CommandRun: func() subcommands.CommandRun {
		r := &createJobRun{}
		r.init()
		r.Flags.StringVar(&r.schedule, "schedule", "0 */6 * * *", "Cron schedule for the job.")
		r.Flags.StringVar(&r.url, "url", "", "URL the job POSTs to.")
		return r
	},
}

type createJobRun struct {
	jobRun
	schedule string
	url      string
}

func (r *createJobRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("url", r.url); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createJob(a.GetOut(), r.parent(), r.jobID, r.schedule, r.url))
}

var cmdListJobs = &subcommands.Command{
	UsageLine: "scheduler-list-jobs [-location L] [-project ID]",
	ShortDesc: "prints every job in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listJobsRun{}
		r.init()
		return r
	},
}

type listJobsRun struct{ jobRun }

func (r *listJobsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listJobs(a.GetOut(), r.parent()))
}

var cmdPauseJob = &subcommands.Command{
	UsageLine: "scheduler-pause-job -job-id ID [-location L] [-project ID]",
	ShortDesc: "pauses a job",
	CommandRun: func() subcommands.CommandRun {
		r := &pauseJobRun{}
		r.init()
		return r
	},
}

type pauseJobRun struct{ jobRun }

func (r *pauseJobRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, pauseJob(a.GetOut(), r.jobName()))
}

var cmdDeleteJob = &subcommands.Command{
	UsageLine: "scheduler-delete-job -job-id ID [-location L] [-project ID]",
	ShortDesc: "deletes a job",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteJobRun{}
		r.init()
		return r
	},
}

type deleteJobRun struct{ jobRun }

func (r *deleteJobRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteJob(a.GetOut(), r.jobName()))
}
