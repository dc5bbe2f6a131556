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

package translate

// [START translate_v3_list_glossaries]
import (
	"context"
	"fmt"
	"io"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listGlossaries prints every glossary in the given location.
func listGlossaries(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	ctx := context.Background()
	client, err := translate.NewTranslationClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	req := &translatepb.ListGlossariesRequest{
		Parent: parent,
	}

	it := client.ListGlossaries(ctx, req)
	for {
		glossary, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list glossaries: %w", err)
		}
		fmt.Fprintf(w, "Found glossary: %s\n", glossary.Name)
	}
	return nil
}

// [END translate_v3_list_glossaries]
