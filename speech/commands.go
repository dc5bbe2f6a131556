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
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Speech-to-Text.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdTranscribeSync,
		cmdTranscribeSyncGCS,
		cmdTranscribeAsyncGCS,
	}
}

var cmdTranscribeSync = &subcommands.Command{
	UsageLine: "speech-transcribe-sync -audio PATH",
	ShortDesc: "transcribes a short local audio file",
	CommandRun: func() subcommands.CommandRun {
		r := &transcribeSyncRun{}
		r.Init()
		r.Flags.StringVar(&r.path, "audio", "", "Path to a 16 kHz LINEAR16 audio file.")
		return r
	},
}

type transcribeSyncRun struct {
	samplecli.Base
	path string
}

func (r *transcribeSyncRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := samplecli.RequireFlag("audio", r.path); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, transcribeSync(a.GetOut(), r.path))
}

var cmdTranscribeSyncGCS = &subcommands.Command{
	UsageLine: "speech-transcribe-sync-gcs -gcs-uri URI",
	ShortDesc: "transcribes a short audio file in Cloud Storage",
	CommandRun: func() subcommands.CommandRun {
		r := &transcribeSyncGCSRun{}
		r.Init()
		r.Flags.StringVar(&r.gcsURI, "gcs-uri", "", "gs:// URI of the audio file.")
		return r
	},
}

type transcribeSyncGCSRun struct {
	samplecli.Base
	gcsURI string
}

func (r *transcribeSyncGCSRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := samplecli.RequireFlag("gcs-uri", r.gcsURI); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, transcribeSyncGCS(a.GetOut(), r.gcsURI))
}

var cmdTranscribeAsyncGCS = &subcommands.Command{
	UsageLine: "speech-transcribe-async-gcs -gcs-uri URI",
	ShortDesc: "transcribes long audio in Cloud Storage via a long-running operation",
	CommandRun: func() subcommands.CommandRun {
		r := &transcribeAsyncGCSRun{}
		r.Init()
		r.Flags.StringVar(&r.gcsURI, "gcs-uri", "", "gs:// URI of the audio file.")
		return r
	},
}

type transcribeAsyncGCSRun struct {
	samplecli.Base
	gcsURI string
}

func (r *transcribeAsyncGCSRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := samplecli.RequireFlag("gcs-uri", r.gcsURI); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, transcribeAsyncGCS(a.GetOut(), r.gcsURI))
}
