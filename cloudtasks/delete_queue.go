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

// [START cloud_tasks_delete_queue]
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

// deleteQueue deletes a queue and every task on it.
func deleteQueue(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/queues/my-queue"
	ctx := context.Background()
	client, err := cloudtasks.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cloudtasks client: %w", err)
	}
	defer client.Close()

	req := &cloudtaskspb.DeleteQueueRequest{
		Name: name,
	}

	if err := client.DeleteQueue(ctx, req); err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Queue %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete queue: %w", err)
	}
	fmt.Fprintf(w, "Deleted queue %s\n", name)
	return nil
}

// [END cloud_tasks_delete_queue]
