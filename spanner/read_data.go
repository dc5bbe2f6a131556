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

// [START spanner_read_data]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// readData reads all Singers rows through the key-based read API.
func readData(w io.Writer, db string, opts ...option.ClientOption) error {
	// db := "projects/my-project/instances/my-instance/databases/my-db"
	ctx := context.Background()
	client, err := spanner.NewClient(ctx, db, opts...)
	if err != nil {
		return fmt.Errorf("failed to create spanner client: %w", err)
	}
	defer client.Close()

	it := client.Single().Read(ctx, "Singers", spanner.AllKeys(),
		[]string{"SingerId", "FirstName", "LastName"})
	defer it.Stop()
	for {
		row, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		var id int64
		var first, last string
		if err := row.Columns(&id, &first, &last); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		fmt.Fprintf(w, "%d %s %s\n", id, first, last)
	}
	return nil
}

// [END spanner_read_data]
