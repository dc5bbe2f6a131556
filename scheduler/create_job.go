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

// [START cloudscheduler_create_job]
import (
	"context"
	"fmt"
	"io"

	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/scheduler/apiv1/schedulerpb"
	"google.golang.org/api/option"
)

// createJob creates a job that POSTs to the given URL on the given cron
// schedule.
func createJob(w io.Writer, parent, id, cronSchedule, url string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	// id := "my-job"
	// cronSchedule := "0 */6 * * *"
	// url := "https://example.com/ping"
	ctx := context.Background()
	client, err := scheduler.NewCloudSchedulerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create scheduler client: %w", err)
	}
	defer client.Close()

	req := &schedulerpb.CreateJobRequest{
		Parent: parent,
		Job: &schedulerpb.Job{
			Name:     parent + "/jobs/" + id,
			Schedule: cronSchedule,
			TimeZone: "Etc/UTC",
			Target: &schedulerpb.Job_HttpTarget{
				HttpTarget: &schedulerpb.HttpTarget{
					Uri:        url,
					HttpMethod: schedulerpb.HttpMethod_POST,
				},
			},
		},
	}

	result, err := client.CreateJob(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	fmt.Fprintf(w, "Created job %s with schedule %q\n", result.Name, result.Schedule)
	return nil
}

// [END cloudscheduler_create_job]
