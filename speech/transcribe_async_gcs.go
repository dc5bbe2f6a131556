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

// [START speech_transcribe_async_gcs]
import (
	"context"
	"fmt"
	"io"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// transcribeAsyncGCS transcribes audio in Cloud Storage that may be longer
// than a minute. Recognition runs as a long-running operation; the call
// blocks until it completes.
func transcribeAsyncGCS(w io.Writer, gcsURI string, opts ...option.ClientOption) error {
	// gcsURI := "gs://my-bucket/long-audio.raw"
	ctx := context.Background()
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	req := &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: 16000,
			LanguageCode:    "en-US",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: gcsURI},
		},
	}

	op, err := client.LongRunningRecognize(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to start recognition: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for recognition: %w", err)
	}
	for _, res := range result.GetResults() {
		for _, alt := range res.GetAlternatives() {
			fmt.Fprintf(w, "Transcript: %q (confidence=%.2f)\n", alt.GetTranscript(), alt.GetConfidence())
		}
	}
	return nil
}

// [END speech_transcribe_async_gcs]
