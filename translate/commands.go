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

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Cloud Translation.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdTranslateText,
		cmdDetectLanguage,
		cmdCreateGlossary,
		cmdListGlossaries,
		cmdDeleteGlossary,
	}
}

// translateRun is the base for translation subcommands.
type translateRun struct {
	samplecli.Base
	location string
}

func (r *translateRun) init(defaultLocation string) {
	r.Init()
	r.Flags.StringVar(&r.location, "location", defaultLocation, "Location to run against.")
}

func (r *translateRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

var cmdTranslateText = &subcommands.Command{
	UsageLine: "translate-text -text TEXT [-target-lang CODE] [-project ID]",
	ShortDesc: "translates text into the target language",
	CommandRun: func() subcommands.CommandRun {
		r := &translateTextRun{}
		r.init("global")
		r.Flags.StringVar(&r.targetLang, "target-lang", "es", "Target language code.")
		r.Flags.StringVar(&r.text, "text", "", "Text to translate.")
		return r
	},
}

type translateTextRun struct {
	translateRun
	targetLang string
	text       string
}

func (r *translateTextRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("text", r.text); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, translateText(a.GetOut(), r.parent(), r.targetLang, r.text))
}

var cmdDetectLanguage = &subcommands.Command{
	UsageLine: "translate-detect-language -text TEXT [-project ID]",
	ShortDesc: "detects the language of text",
	CommandRun: func() subcommands.CommandRun {
		r := &detectLanguageRun{}
		r.init("global")
		r.Flags.StringVar(&r.text, "text", "", "Text to detect the language of.")
		return r
	},
}

type detectLanguageRun struct {
	translateRun
	text string
}

func (r *detectLanguageRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("text", r.text); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, detectLanguage(a.GetOut(), r.parent(), r.text))
}

var cmdCreateGlossary = &subcommands.Command{
	UsageLine: "translate-create-glossary -glossary-id ID -gcs-uri URI [-project ID]",
	ShortDesc: "creates a glossary from a CSV in Cloud Storage",
	CommandRun: func() subcommands.CommandRun {
		r := &createGlossaryRun{}
		r.init("us-central1")
		r.Flags.StringVar(&r.glossaryID, "glossary-id", "", "ID of the glossary.")
		r.Flags.StringVar(&r.gcsURI, "gcs-uri", "", "gs:// URI of the glossary CSV.")
		return r
	},
}

type createGlossaryRun struct {
	translateRun
	glossaryID string
	gcsURI     string
}

func (r *createGlossaryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("glossary-id", r.glossaryID); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("gcs-uri", r.gcsURI); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createGlossary(a.GetOut(), r.parent(), r.glossaryID, r.gcsURI))
}

var cmdListGlossaries = &subcommands.Command{
	UsageLine: "translate-list-glossaries [-location L] [-project ID]",
	ShortDesc: "prints every glossary in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listGlossariesRun{}
		r.init("us-central1")
		return r
	},
}

type listGlossariesRun struct{ translateRun }

func (r *listGlossariesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listGlossaries(a.GetOut(), r.parent()))
}

var cmdDeleteGlossary = &subcommands.Command{
	UsageLine: "translate-delete-glossary -glossary-id ID [-project ID]",
	ShortDesc: "deletes a glossary",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteGlossaryRun{}
		r.init("us-central1")
		r.Flags.StringVar(&r.glossaryID, "glossary-id", "", "ID of the glossary.")
		return r
	},
}

type deleteGlossaryRun struct {
	translateRun
	glossaryID string
}

func (r *deleteGlossaryRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("glossary-id", r.glossaryID); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteGlossary(a.GetOut(), r.parent()+"/glossaries/"+r.glossaryID))
}
