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

// [START dlp_create_inspect_template]
import (
	"context"
	"fmt"
	"io"

	dlp "cloud.google.com/go/dlp/apiv2"
	"cloud.google.com/go/dlp/apiv2/dlppb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// createInspectTemplate saves an inspect configuration as a reusable
// template.
func createInspectTemplate(w io.Writer, parent, id string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// id := "my-template"
	ctx := context.Background()
	client, err := dlp.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dlp client: %w", err)
	}
	defer client.Close()

	req := &dlppb.CreateInspectTemplateRequest{
		Parent:     parent,
		TemplateId: id,
		InspectTemplate: &dlppb.InspectTemplate{
			DisplayName: "Email and phone inspection",
			Description: "Detects email addresses and phone numbers.",
			InspectConfig: &dlppb.InspectConfig{
				InfoTypes: []*dlppb.InfoType{
					{Name: "EMAIL_ADDRESS"},
					{Name: "PHONE_NUMBER"},
				},
			},
		},
	}

	result, err := client.CreateInspectTemplate(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "Inspect template %s already exists.\n", id)
			return nil
		}
		return fmt.Errorf("failed to create inspect template: %w", err)
	}
	fmt.Fprintf(w, "Created inspect template: %s\n", result.Name)
	return nil
}

// [END dlp_create_inspect_template]
