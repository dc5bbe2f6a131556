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

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeSpeech returns a canned transcript for any recognizable audio and
// rejects URIs that are not gs:// paths.
type fakeSpeech struct {
	speechpb.UnimplementedSpeechServer
}

func (f *fakeSpeech) recognize(audio *speechpb.RecognitionAudio) (*speechpb.SpeechRecognitionResult, error) {
	if uri := audio.GetUri(); uri != "" && !strings.HasPrefix(uri, "gs://") {
		return nil, status.Errorf(codes.InvalidArgument, "%s is not a gs:// URI", uri)
	}
	return &speechpb.SpeechRecognitionResult{
		Alternatives: []*speechpb.SpeechRecognitionAlternative{
			{Transcript: "how old is the Brooklyn Bridge", Confidence: 0.98},
		},
	}, nil
}

func (f *fakeSpeech) Recognize(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
	result, err := f.recognize(req.GetAudio())
	if err != nil {
		return nil, err
	}
	return &speechpb.RecognizeResponse{Results: []*speechpb.SpeechRecognitionResult{result}}, nil
}

func (f *fakeSpeech) LongRunningRecognize(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (*longrunningpb.Operation, error) {
	result, err := f.recognize(req.GetAudio())
	if err != nil {
		return nil, err
	}
	return sampletest.DoneOperation("operations/recognize", &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{result},
	})
}

func startFake(t testing.TB) []option.ClientOption {
	return sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		speechpb.RegisterSpeechServer(srv, &fakeSpeech{})
	})
}

const wantLine = "Transcript: \"how old is the Brooklyn Bridge\" (confidence=0.98)\n"

func TestTranscribeSync(t *testing.T) {
	t.Parallel()

	ftt.Run("TranscribeSync", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer

		t.Run("transcribes a local file", func(t *ftt.Test) {
			path := filepath.Join(t.TempDir(), "audio.raw")
			assert.NoErr(t, os.WriteFile(path, []byte("\x00\x01audio"), 0o600))
			assert.NoErr(t, transcribeSync(&buf, path, opts...))
			assert.Loosely(t, buf.String(), should.Equal(wantLine))
		})

		t.Run("reports an unreadable file", func(t *ftt.Test) {
			err := transcribeSync(&buf, filepath.Join(t.TempDir(), "missing.raw"), opts...)
			assert.ErrIsLike(t, err, "failed to read audio file")
		})
	})
}

func TestTranscribeSyncGCS(t *testing.T) {
	t.Parallel()

	ftt.Run("TranscribeSyncGCS", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer

		t.Run("transcribes a gs:// URI", func(t *ftt.Test) {
			assert.NoErr(t, transcribeSyncGCS(&buf, "gs://my-bucket/audio.raw", opts...))
			assert.Loosely(t, buf.String(), should.Equal(wantLine))
		})

		t.Run("prints a hint for a bad URI", func(t *ftt.Test) {
			assert.NoErr(t, transcribeSyncGCS(&buf, "http://example.com/audio.raw", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"http://example.com/audio.raw is not a valid gs:// URI or the audio format is unsupported.\n"))
		})
	})
}

func TestTranscribeAsyncGCS(t *testing.T) {
	t.Parallel()

	ftt.Run("blocks on the operation and prints the transcript", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, transcribeAsyncGCS(&buf, "gs://my-bucket/long-audio.raw", opts...))
		assert.Loosely(t, buf.String(), should.Equal(wantLine))
	})
}
