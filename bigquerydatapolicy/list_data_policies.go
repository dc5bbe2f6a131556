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

package bigquerydatapolicy

// [START bigquerydatapolicy_list_data_policies]
import (
	"context"
	"fmt"
	"io"

	datapolicies "cloud.google.com/go/bigquery/datapolicies/apiv1"
	"cloud.google.com/go/bigquery/datapolicies/apiv1/datapoliciespb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listDataPolicies prints every data policy in the given location.
func listDataPolicies(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us"
	ctx := context.Background()
	client, err := datapolicies.NewDataPolicyClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datapolicy client: %w", err)
	}
	defer client.Close()

	req := &datapoliciespb.ListDataPoliciesRequest{
		Parent: parent,
	}

	it := client.ListDataPolicies(ctx, req)
	for {
		policy, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list data policies: %w", err)
		}
		fmt.Fprintf(w, "Found data policy: %s\n", policy.Name)
	}
	return nil
}

// [END bigquerydatapolicy_list_data_policies]
