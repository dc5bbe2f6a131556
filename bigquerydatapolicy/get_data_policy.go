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

// [START bigquerydatapolicy_get_data_policy]
import (
	"context"
	"fmt"
	"io"

	datapolicies "cloud.google.com/go/bigquery/datapolicies/apiv1"
	"cloud.google.com/go/bigquery/datapolicies/apiv1/datapoliciespb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getDataPolicy fetches a data policy and prints its type.
func getDataPolicy(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us/dataPolicies/mask_email"
	ctx := context.Background()
	client, err := datapolicies.NewDataPolicyClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datapolicy client: %w", err)
	}
	defer client.Close()

	req := &datapoliciespb.GetDataPolicyRequest{
		Name: name,
	}

	result, err := client.GetDataPolicy(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Data policy %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to get data policy: %w", err)
	}
	fmt.Fprintf(w, "Found data policy %s of type %s\n", result.Name, result.DataPolicyType)
	return nil
}

// [END bigquerydatapolicy_get_data_policy]
