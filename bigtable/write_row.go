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

// [START bigtable_hw_write_rows]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/bigtable"
	"google.golang.org/api/option"
)

// writeRow writes one cell into a row.
func writeRow(w io.Writer, projectID, instanceID, tableID, rowKey, value string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// instanceID := "my-instance"
	// tableID := "greetings"
	// rowKey := "greeting0"
	// value := "Hello, Bigtable!"
	ctx := context.Background()
	client, err := bigtable.NewClient(ctx, projectID, instanceID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create bigtable client: %w", err)
	}
	defer client.Close()

	tbl := client.Open(tableID)
	mut := bigtable.NewMutation()
	mut.Set("cf", "greeting", bigtable.Now(), []byte(value))

	if err := tbl.Apply(ctx, rowKey, mut); err != nil {
		return fmt.Errorf("failed to apply mutation: %w", err)
	}
	fmt.Fprintf(w, "Wrote row %s\n", rowKey)
	return nil
}

// [END bigtable_hw_write_rows]
