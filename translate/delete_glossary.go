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

// [START translate_v3_delete_glossary]
import (
	"context"
	"fmt"
	"io"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deleteGlossary deletes a glossary, blocking until the long-running
// operation completes.
func deleteGlossary(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/glossaries/my-glossary"
	ctx := context.Background()
	client, err := translate.NewTranslationClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	req := &translatepb.DeleteGlossaryRequest{
		Name: name,
	}

	op, err := client.DeleteGlossary(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Glossary %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete glossary: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for glossary deletion: %w", err)
	}
	fmt.Fprintf(w, "Deleted glossary %s\n", result.GetName())
	return nil
}

// [END translate_v3_delete_glossary]
