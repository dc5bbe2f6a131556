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

// [START translate_v3_detect_language]
import (
	"context"
	"fmt"
	"io"

	translate "cloud.google.com/go/translate/apiv3"
	"cloud.google.com/go/translate/apiv3/translatepb"
	"google.golang.org/api/option"
)

// detectLanguage guesses the language of the given text.
func detectLanguage(w io.Writer, parent, text string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/global"
	// text := "Bonjour le monde"
	ctx := context.Background()
	client, err := translate.NewTranslationClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	req := &translatepb.DetectLanguageRequest{
		Parent:   parent,
		MimeType: "text/plain",
		Source: &translatepb.DetectLanguageRequest_Content{
			Content: text,
		},
	}

	result, err := client.DetectLanguage(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to detect language: %w", err)
	}
	for _, language := range result.GetLanguages() {
		fmt.Fprintf(w, "Detected language %s with confidence %.2f\n",
			language.GetLanguageCode(), language.GetConfidence())
	}
	return nil
}

// [END translate_v3_detect_language]
