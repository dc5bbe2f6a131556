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

// [START bigquerydatapolicy_update_data_policy]
import (
	"context"
	"fmt"
	"io"

	datapolicies "cloud.google.com/go/bigquery/datapolicies/apiv1"
	"cloud.google.com/go/bigquery/datapolicies/apiv1/datapoliciespb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// updateDataPolicy switches a data policy's masking expression to
// ALWAYS_NULL. Only the path named in the field mask is touched.
func updateDataPolicy(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us/dataPolicies/mask_email"
	ctx := context.Background()
	client, err := datapolicies.NewDataPolicyClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create datapolicy client: %w", err)
	}
	defer client.Close()

	req := &datapoliciespb.UpdateDataPolicyRequest{
		DataPolicy: &datapoliciespb.DataPolicy{
			Name: name,
			Policy: &datapoliciespb.DataPolicy_DataMaskingPolicy{
				DataMaskingPolicy: &datapoliciespb.DataMaskingPolicy{
					MaskingExpression: &datapoliciespb.DataMaskingPolicy_PredefinedExpression_{
						PredefinedExpression: datapoliciespb.DataMaskingPolicy_ALWAYS_NULL,
					},
				},
			},
		},
		UpdateMask: &fieldmaskpb.FieldMask{
			Paths: []string{"data_masking_policy"},
		},
	}

	result, err := client.UpdateDataPolicy(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update data policy: %w", err)
	}
	fmt.Fprintf(w, "Updated data policy: %s\n", result.Name)
	return nil
}

// [END bigquerydatapolicy_update_data_policy]
