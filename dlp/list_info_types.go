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

// [START dlp_list_info_types]
import (
	"context"
	"fmt"
	"io"

	dlp "cloud.google.com/go/dlp/apiv2"
	"cloud.google.com/go/dlp/apiv2/dlppb"
	"google.golang.org/api/option"
)

// listInfoTypes prints the info type detectors the service supports.
func listInfoTypes(w io.Writer, opts ...option.ClientOption) error {
	ctx := context.Background()
	client, err := dlp.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dlp client: %w", err)
	}
	defer client.Close()

	req := &dlppb.ListInfoTypesRequest{
		LanguageCode: "en-US",
	}

	result, err := client.ListInfoTypes(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list info types: %w", err)
	}
	for _, it := range result.GetInfoTypes() {
		fmt.Fprintf(w, "%s: %s\n", it.GetName(), it.GetDisplayName())
	}
	return nil
}

// [END dlp_list_info_types]
