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

// [START cloud_tasks_create_http_task]
import (
	"context"
	"fmt"
	"io"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/api/option"
)

// createHTTPTask enqueues a task that POSTs the message to the given URL
// when it is dispatched.
func createHTTPTask(w io.Writer, queue, url, message string, opts ...option.ClientOption) error {
	// queue := "projects/my-project/locations/us-central1/queues/my-queue"
	// url := "https://example.com/task_handler"
	// message := "task payload"
	ctx := context.Background()
	client, err := cloudtasks.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cloudtasks client: %w", err)
	}
	defer client.Close()

	req := &cloudtaskspb.CreateTaskRequest{
		Parent: queue,
		Task: &cloudtaskspb.Task{
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Url:        url,
					Body:       []byte(message),
				},
			},
		},
	}

	result, err := client.CreateTask(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	fmt.Fprintf(w, "Created task: %s\n", result.Name)
	return nil
}

// [END cloud_tasks_create_http_task]
