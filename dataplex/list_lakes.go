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

// [START dataplex_list_lakes]
import (
	"context"
	"fmt"
	"io"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listLakes prints every lake in the given location.
func listLakes(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	ctx := context.Background()
	client, err := dataplex.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dataplex client: %w", err)
	}
	defer client.Close()

	req := &dataplexpb.ListLakesRequest{
		Parent: parent,
	}

	it := client.ListLakes(ctx, req)
	for {
		lake, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list lakes: %w", err)
		}
		fmt.Fprintf(w, "Found lake: %s\n", lake.Name)
	}
	return nil
}

// [END dataplex_list_lakes]
