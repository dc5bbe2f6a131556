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

// [START translate_v3_translate_text]
import (
	"context"
	"fmt"
	"io"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/option"
)

// translateText translates text into the target language.
func translateText(w io.Writer, parent, targetLang, text string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// targetLang := "es"
	// text := "Hello, world!"
	ctx := context.Background()
	client, err := translate.NewTranslationClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	req := &translatepb.TranslateTextRequest{
		Parent:             parent,
		TargetLanguageCode: targetLang,
		MimeType:           "text/plain",
		Contents:           []string{text},
	}

	result, err := client.TranslateText(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to translate text: %w", err)
	}
	for _, translation := range result.GetTranslations() {
		fmt.Fprintf(w, "Translated text: %s\n", translation.GetTranslatedText())
	}
	return nil
}

// [END translate_v3_translate_text]
