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

package dlp

// [START dlp_deidentify_masking]
import (
	"context"
	"fmt"
	"io"

	dlp "cloud.google.com/go/dlp/apiv2"
	"cloud.google.com/go/dlp/apiv2/dlppb"
	"google.golang.org/api/option"
)

// deidentifyMasking replaces every character of detected sensitive values
// with the masking character.
func deidentifyMasking(w io.Writer, parent, text string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// text := "My SSN is 372819127"
	ctx := context.Background()
	client, err := dlp.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dlp client: %w", err)
	}
	defer client.Close()

	req := &dlppb.DeidentifyContentRequest{
		Parent: parent,
		DeidentifyConfig: &dlppb.DeidentifyConfig{
			Transformation: &dlppb.DeidentifyConfig_InfoTypeTransformations{
				InfoTypeTransformations: &dlppb.InfoTypeTransformations{
					Transformations: []*dlppb.InfoTypeTransformations_InfoTypeTransformation{
						{
							PrimitiveTransformation: &dlppb.PrimitiveTransformation{
								Transformation: &dlppb.PrimitiveTransformation_CharacterMaskConfig{
									CharacterMaskConfig: &dlppb.CharacterMaskConfig{
										MaskingCharacter: "*",
									},
								},
							},
						},
					},
				},
			},
		},
		Item: &dlppb.ContentItem{
			DataItem: &dlppb.ContentItem_Value{Value: text},
		},
	}

	result, err := client.DeidentifyContent(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to deidentify content: %w", err)
	}
	fmt.Fprintf(w, "De-identified text: %s\n", result.GetItem().GetValue())
	return nil
}

// [END dlp_deidentify_masking]
