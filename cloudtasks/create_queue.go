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

// [START cloud_tasks_create_queue]
import (
	"context"
	"fmt"
	"io"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// createQueue creates a queue in the given location.
func createQueue(w io.Writer, parent, id string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	// id := "my-queue"
	ctx := context.Background()
	client, err := cloudtasks.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cloudtasks client: %w", err)
	}
	defer client.Close()

	req := &cloudtaskspb.CreateQueueRequest{
		Parent: parent,
		Queue: &cloudtaskspb.Queue{
			Name: parent + "/queues/" + id,
		},
	}

	result, err := client.CreateQueue(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "Queue %s already exists.\n", id)
			return nil
		}
		return fmt.Errorf("failed to create queue: %w", err)
	}
	fmt.Fprintf(w, "Created queue: %s\n", result.Name)
	return nil
}

// [END cloud_tasks_create_queue]
