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

// [START dlp_inspect_string]
import (
	"context"
	"fmt"
	"io"

	dlp "cloud.google.com/go/dlp/apiv2"
	"cloud.google.com/go/dlp/apiv2/dlppb"
	"google.golang.org/api/option"
)

// inspectString scans text for email addresses and phone numbers and prints
// every finding with its likelihood.
func inspectString(w io.Writer, parent, text string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// text := "My email is test@example.com"
	ctx := context.Background()
	client, err := dlp.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dlp client: %w", err)
	}
	defer client.Close()

	req := &dlppb.InspectContentRequest{
		Parent: parent,
		InspectConfig: &dlppb.InspectConfig{
			InfoTypes: []*dlppb.InfoType{
				{Name: "EMAIL_ADDRESS"},
				{Name: "PHONE_NUMBER"},
			},
			IncludeQuote: true,
		},
		Item: &dlppb.ContentItem{
			DataItem: &dlppb.ContentItem_Value{Value: text},
		},
	}

	result, err := client.InspectContent(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to inspect content: %w", err)
	}
	findings := result.GetResult().GetFindings()
	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings.")
		return nil
	}
	for _, f := range findings {
		fmt.Fprintf(w, "Found %s %q (likelihood: %s)\n", f.GetInfoType().GetName(), f.GetQuote(), f.GetLikelihood())
	}
	return nil
}

// [END dlp_inspect_string]
