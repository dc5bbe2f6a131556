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

// [START bigtable_hw_create_table]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/bigtable"
	"google.golang.org/api/option"
)

// createTable creates a table with one column family.
func createTable(w io.Writer, projectID, instanceID, tableID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// instanceID := "my-instance"
	// tableID := "greetings"
	ctx := context.Background()
	admin, err := bigtable.NewAdminClient(ctx, projectID, instanceID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	if err := admin.CreateTable(ctx, tableID); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	if err := admin.CreateColumnFamily(ctx, tableID, "cf"); err != nil {
		return fmt.Errorf("failed to create column family: %w", err)
	}
	fmt.Fprintf(w, "Created table %s with column family cf\n", tableID)
	return nil
}

// [END bigtable_hw_create_table]
