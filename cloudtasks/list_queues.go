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

// [START cloud_tasks_list_queues]
import (
	"context"
	"fmt"
	"io"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listQueues prints every queue in the given location.
func listQueues(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	ctx := context.Background()
	client, err := cloudtasks.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cloudtasks client: %w", err)
	}
	defer client.Close()

	req := &cloudtaskspb.ListQueuesRequest{
		Parent: parent,
	}

	it := client.ListQueues(ctx, req)
	for {
		queue, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list queues: %w", err)
		}
		fmt.Fprintf(w, "Found queue: %s\n", queue.Name)
	}
	return nil
}

// [END cloud_tasks_list_queues]
