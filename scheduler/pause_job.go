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

// [START cloudscheduler_pause_job]
import (
	"context"
	"fmt"
	"io"

	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/scheduler/apiv1/schedulerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// pauseJob pauses a job. A paused job keeps its schedule but is not
// dispatched until it is resumed.
func pauseJob(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/jobs/my-job"
	ctx := context.Background()
	client, err := scheduler.NewCloudSchedulerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create scheduler client: %w", err)
	}
	defer client.Close()

	req := &schedulerpb.PauseJobRequest{
		Name: name,
	}

	result, err := client.PauseJob(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Job %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to pause job: %w", err)
	}
	fmt.Fprintf(w, "Paused job %s (state: %s)\n", result.Name, result.State)
	return nil
}

// [END cloudscheduler_pause_job]
