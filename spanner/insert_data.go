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

package spanner

// [START spanner_insert_data]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/option"
)

// insertData applies insert-or-update mutations for two singers in one
// transaction.
func insertData(w io.Writer, db string, opts ...option.ClientOption) error {
	// db := "projects/my-project/instances/my-instance/databases/my-db"
	ctx := context.Background()
	client, err := spanner.NewClient(ctx, db, opts...)
	if err != nil {
		return fmt.Errorf("failed to create spanner client: %w", err)
	}
	defer client.Close()

	cols := []string{"SingerId", "FirstName", "LastName"}
	mutations := []*spanner.Mutation{
		spanner.InsertOrUpdate("Singers", cols, []any{int64(1), "Marc", "Richards"}),
		spanner.InsertOrUpdate("Singers", cols, []any{int64(2), "Catalina", "Smith"}),
	}

	if _, err := client.Apply(ctx, mutations); err != nil {
		return fmt.Errorf("failed to apply mutations: %w", err)
	}
	fmt.Fprintf(w, "Inserted %d rows into Singers\n", len(mutations))
	return nil
}

// [END spanner_insert_data]
