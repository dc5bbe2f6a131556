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

// [START datastore_delete_entity]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/datastore"
	"google.golang.org/api/option"
)

// deleteEntity deletes a Task entity by key name. Deleting a missing entity
// is not an error.
func deleteEntity(w io.Writer, projectID, name string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// name := "sampletask"
	ctx := context.Background()
	client, err := datastore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datastore client: %w", err)
	}
	defer client.Close()

	key := datastore.NameKey("Task", name, nil)
	if err := client.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	fmt.Fprintf(w, "Deleted task %s\n", name)
	return nil
}

// [END datastore_delete_entity]
