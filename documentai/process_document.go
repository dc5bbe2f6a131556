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

// [START documentai_process_document]
import (
	"context"
	"fmt"
	"io"
	"os"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// processDocument sends a local PDF through an existing processor and prints
// the extracted text. The Document AI endpoint is regional ("us" or "eu").
func processDocument(w io.Writer, processorName, filePath string, opts ...option.ClientOption) error {
	// processorName := "projects/my-project/locations/us/processors/my-processor"
	// filePath := "invoice.pdf"
	ctx := context.Background()
	opts = append([]option.ClientOption{option.WithEndpoint("us-documentai.googleapis.com:443")}, opts...)
	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create document processor client: %w", err)
	}
	defer client.Close()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	req := &documentaipb.ProcessRequest{
		Name: processorName,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  data,
				MimeType: "application/pdf",
			},
		},
	}

	resp, err := client.ProcessDocument(ctx, req)
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			fmt.Fprintf(w, "The processor rejected %s. Check that the file is a valid PDF.\n", filePath)
			return nil
		}
		return fmt.Errorf("failed to process document: %w", err)
	}
	fmt.Fprintf(w, "Document text: %q\n", resp.GetDocument().GetText())
	return nil
}

// [END documentai_process_document]
