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

package bigtable

// [START bigtable_hw_get_by_key]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/bigtable"
	"google.golang.org/api/option"
)

// readRow reads one row by key and prints its cells.
func readRow(w io.Writer, projectID, instanceID, tableID, rowKey string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// instanceID := "my-instance"
	// tableID := "greetings"
	// rowKey := "greeting0"
	ctx := context.Background()
	client, err := bigtable.NewClient(ctx, projectID, instanceID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create bigtable client: %w", err)
	}
	defer client.Close()

	tbl := client.Open(tableID)
	row, err := tbl.ReadRow(ctx, rowKey)
	if err != nil {
		return fmt.Errorf("failed to read row: %w", err)
	}
	if len(row) == 0 {
		fmt.Fprintf(w, "Row %s was not found.\n", rowKey)
		return nil
	}
	for _, items := range row {
		for _, item := range items {
			fmt.Fprintf(w, "%s: %s\n", item.Column, item.Value)
		}
	}
	return nil
}

// [END bigtable_hw_get_by_key]
