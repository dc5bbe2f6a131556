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

// [START dataplex_lookup_entry]
import (
	"context"
	"fmt"
	"io"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// lookupEntry resolves a single catalog entry by its resource name.
func lookupEntry(w io.Writer, location, entry string, opts ...option.ClientOption) error {
	// location := "projects/my-project/locations/global"
	// entry := "projects/my-project/locations/global/entryGroups/my-group/entries/my-entry"
	ctx := context.Background()
	client, err := dataplex.NewCatalogClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}
	defer client.Close()

	req := &dataplexpb.LookupEntryRequest{
		Name:  location,
		Entry: entry,
	}

	result, err := client.LookupEntry(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Entry %s was not found.\n", entry)
			return nil
		}
		return fmt.Errorf("failed to lookup entry: %w", err)
	}
	fmt.Fprintf(w, "Found entry %s of type %s\n", result.Name, result.EntryType)
	return nil
}

// [END dataplex_lookup_entry]
