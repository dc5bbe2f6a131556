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

package retail

// [START retail_search_simple_query]
import (
	"context"
	"fmt"
	"io"

	retail "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// search runs a simple text query against the default serving config and
// prints the matched product IDs.
func search(w io.Writer, catalog, query string, opts ...option.ClientOption) error {
	// catalog := "projects/my-project/locations/global/catalogs/default_catalog"
	// query := "socks"
	ctx := context.Background()
	client, err := retail.NewSearchClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}
	defer client.Close()

	req := &retailpb.SearchRequest{
		Placement: catalog + "/servingConfigs/default_search",
		Query:     query,
		VisitorId: "sample-visitor",
	}

	it := client.Search(ctx, req)
	found := false
	for {
		result, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		found = true
		fmt.Fprintf(w, "Found product %s\n", result.GetId())
	}
	if !found {
		fmt.Fprintf(w, "No products matched %q.\n", query)
	}
	return nil
}

// [END retail_search_simple_query]
