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

package vertexai

// [START vertexai_gemini_generate_content]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// generateContent sends one text prompt to a Gemini model and prints the
// reply.
func generateContent(w io.Writer, projectID, location, prompt string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// location := "us-central1"
	// prompt := "Why is the sky blue?"
	ctx := context.Background()
	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return fmt.Errorf("failed to create genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(w, "The model returned no content.")
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		fmt.Fprintf(w, "%v\n", part)
	}
	return nil
}

// [END vertexai_gemini_generate_content]
