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

// [START translate_v3_create_glossary]
import (
	"context"
	"fmt"
	"io"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/option"
)

// createGlossary builds an equivalent-term-set glossary from a CSV file in
// Cloud Storage. Glossary creation is a long-running operation; the call
// blocks until it completes.
func createGlossary(w io.Writer, parent, id, gcsURI string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	// id := "my-glossary"
	// gcsURI := "gs://my-bucket/glossary.csv"
	ctx := context.Background()
	client, err := translate.NewTranslationClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	req := &translatepb.CreateGlossaryRequest{
		Parent: parent,
		Glossary: &translatepb.Glossary{
			Name: parent + "/glossaries/" + id,
			Languages: &translatepb.Glossary_LanguageCodesSet_{
				LanguageCodesSet: &translatepb.Glossary_LanguageCodesSet{
					LanguageCodes: []string{"en", "es"},
				},
			},
			InputConfig: &translatepb.GlossaryInputConfig{
				Source: &translatepb.GlossaryInputConfig_GcsSource{
					GcsSource: &translatepb.GcsSource{
						InputUri: gcsURI,
					},
				},
			},
		},
	}

	op, err := client.CreateGlossary(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create glossary: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for glossary creation: %w", err)
	}
	fmt.Fprintf(w, "Created glossary: %s\n", result.Name)
	return nil
}

// [END translate_v3_create_glossary]
