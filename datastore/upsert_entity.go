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

// [START datastore_upsert_entity]
import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/datastore"
	"google.golang.org/api/option"
)

// upsertEntity writes a Task entity under a caller-chosen key name.
func upsertEntity(w io.Writer, projectID, name, description string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// name := "sampletask"
	// description := "Buy milk"
	ctx := context.Background()
	client, err := datastore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datastore client: %w", err)
	}
	defer client.Close()

	key := datastore.NameKey("Task", name, nil)
	task := &Task{
		Description: description,
		Created:     time.Now(),
	}

	if _, err := client.Put(ctx, key, task); err != nil {
		return fmt.Errorf("failed to put entity: %w", err)
	}
	fmt.Fprintf(w, "Saved task %s\n", key.Name)
	return nil
}

// [END datastore_upsert_entity]
