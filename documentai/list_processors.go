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

// [START documentai_list_processors]
import (
	"context"
	"fmt"
	"io"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listProcessors prints every processor under the given location with its
// type.
func listProcessors(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us"
	ctx := context.Background()
	opts = append([]option.ClientOption{option.WithEndpoint("us-documentai.googleapis.com:443")}, opts...)
	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create document processor client: %w", err)
	}
	defer client.Close()

	req := &documentaipb.ListProcessorsRequest{
		Parent: parent,
	}

	it := client.ListProcessors(ctx, req)
	for {
		p, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list processors: %w", err)
		}
		fmt.Fprintf(w, "Processor %s (type: %s)\n", p.GetName(), p.GetType())
	}
	return nil
}

// [END documentai_list_processors]
