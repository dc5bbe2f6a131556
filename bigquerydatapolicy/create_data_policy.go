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

// [START bigquerydatapolicy_create_data_policy]
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

// createDataPolicy creates a data masking policy whose masking expression
// replaces column values with their SHA-256 hash.
func createDataPolicy(w io.Writer, parent, id string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us"
	// id := "mask_email"
	ctx := context.Background()
	client, err := datapolicies.NewDataPolicyClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datapolicy client: %w", err)
	}
	defer client.Close()

	req := &datapoliciespb.CreateDataPolicyRequest{
		Parent: parent,
		DataPolicy: &datapoliciespb.DataPolicy{
			DataPolicyId:   id,
			DataPolicyType: datapoliciespb.DataPolicy_DATA_MASKING_POLICY,
			Policy: &datapoliciespb.DataPolicy_DataMaskingPolicy{
				DataMaskingPolicy: &datapoliciespb.DataMaskingPolicy{
					MaskingExpression: &datapoliciespb.DataMaskingPolicy_PredefinedExpression_{
						PredefinedExpression: datapoliciespb.DataMaskingPolicy_SHA256,
					},
				},
			},
		},
	}

	result, err := client.CreateDataPolicy(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "Data policy %s already exists.\n", id)
			return nil
		}
		return fmt.Errorf("failed to create data policy: %w", err)
	}
	fmt.Fprintf(w, "Created data policy: %s\n", result.Name)
	return nil
}

// [END bigquerydatapolicy_create_data_policy]
