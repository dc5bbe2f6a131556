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

package dataplex

// [START dataplex_create_entry_type]
import (
	"context"
	"fmt"
	"io"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/api/option"
)

// createEntryType creates a catalog entry type. Entry type creation is a
// long-running operation; the call blocks until it completes.
func createEntryType(w io.Writer, parent, id string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// id := "my-entry-type"
	ctx := context.Background()
	client, err := dataplex.NewCatalogClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}
	defer client.Close()

	req := &dataplexpb.CreateEntryTypeRequest{
		Parent:      parent,
		EntryTypeId: id,
		EntryType: &dataplexpb.EntryType{
			Description: "Example entry type for tables",
			TypeAliases: []string{"TABLE"},
		},
	}

	op, err := client.CreateEntryType(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create entry type: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for entry type creation: %w", err)
	}
	fmt.Fprintf(w, "Created entry type: %s\n", result.Name)
	return nil
}

// [END dataplex_create_entry_type]
