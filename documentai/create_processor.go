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

package documentai

// [START documentai_create_processor]
import (
	"context"
	"fmt"
	"io"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// createProcessor creates a general OCR processor under the given location.
func createProcessor(w io.Writer, parent, displayName string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us"
	// displayName := "my-processor"
	ctx := context.Background()
	opts = append([]option.ClientOption{option.WithEndpoint("us-documentai.googleapis.com:443")}, opts...)
	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create document processor client: %w", err)
	}
	defer client.Close()

	req := &documentaipb.CreateProcessorRequest{
		Parent: parent,
		Processor: &documentaipb.Processor{
			DisplayName: displayName,
			Type:        "OCR_PROCESSOR",
		},
	}

	p, err := client.CreateProcessor(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "A processor named %s already exists under %s.\n", displayName, parent)
			return nil
		}
		return fmt.Errorf("failed to create processor: %w", err)
	}
	fmt.Fprintf(w, "Created processor: %s\n", p.GetName())
	return nil
}

// [END documentai_create_processor]
