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

package speech

// [START speech_transcribe_sync]
import (
	"context"
	"fmt"
	"io"
	"os"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// transcribeSync transcribes a local audio file shorter than a minute.
func transcribeSync(w io.Writer, path string, opts ...option.ClientOption) error {
	// path := "audio.raw" // 16 kHz LINEAR16 audio
	ctx := context.Background()
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audio file: %w", err)
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    "en-US",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	}

	result, err := client.Recognize(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to recognize: %w", err)
	}
	for _, res := range result.GetResults() {
		for _, alt := range res.GetAlternatives() {
			fmt.Fprintf(w, "Transcript: %q (confidence=%.2f)\n", alt.GetTranscript(), alt.GetConfidence())
		}
	}
	return nil
}

// [END speech_transcribe_sync]
