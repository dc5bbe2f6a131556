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

package datastore

// [START datastore_basic_query]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/datastore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// queryTasks prints every Task that is not done yet.
func queryTasks(w io.Writer, projectID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	ctx := context.Background()
	client, err := datastore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datastore client: %w", err)
	}
	defer client.Close()

	query := datastore.NewQuery("Task").FilterField("Done", "=", false)
	it := client.Run(ctx, query)
	for {
		var task Task
		key, err := it.Next(&task)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		fmt.Fprintf(w, "Task %s: %s\n", key.Name, task.Description)
	}
	return nil
}

// [END datastore_basic_query]
