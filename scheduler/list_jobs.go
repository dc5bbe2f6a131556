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

// [START cloudscheduler_list_jobs]
import (
	"context"
	"fmt"
	"io"

	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/scheduler/apiv1/schedulerpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listJobs prints every job in the given location.
func listJobs(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	ctx := context.Background()
	client, err := scheduler.NewCloudSchedulerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create scheduler client: %w", err)
	}
	defer client.Close()

	req := &schedulerpb.ListJobsRequest{
		Parent: parent,
	}

	it := client.ListJobs(ctx, req)
	for {
		job, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}
		fmt.Fprintf(w, "Found job %s with schedule %q\n", job.Name, job.Schedule)
	}
	return nil
}

// [END cloudscheduler_list_jobs]
