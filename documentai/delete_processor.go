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

// [START documentai_delete_processor]
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

// deleteProcessor deletes a processor and waits for the deletion to finish.
func deleteProcessor(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us/processors/my-processor"
	ctx := context.Background()
	opts = append([]option.ClientOption{option.WithEndpoint("us-documentai.googleapis.com:443")}, opts...)
	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create document processor client: %w", err)
	}
	defer client.Close()

	req := &documentaipb.DeleteProcessorRequest{
		Name: name,
	}

	op, err := client.DeleteProcessor(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Processor %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete processor: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for processor deletion: %w", err)
	}
	fmt.Fprintf(w, "Deleted processor %s\n", name)
	return nil
}

// [END documentai_delete_processor]
