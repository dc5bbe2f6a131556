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

package documentai

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Document AI.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdProcessDocument,
		cmdListProcessors,
		cmdCreateProcessor,
		cmdDeleteProcessor,
	}
}

// processorRun is the base for subcommands addressing one processor.
type processorRun struct {
	samplecli.Base
	location    string
	processorID string
}

func (r *processorRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us", "Document AI location (us or eu).")
	r.Flags.StringVar(&r.processorID, "processor-id", "", "ID of the processor.")
}

func (r *processorRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *processorRun) processorName() string {
	return r.parent() + "/processors/" + r.processorID
}

func (r *processorRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("processor-id", r.processorID)
}

var cmdProcessDocument = &subcommands.Command{
	UsageLine: "documentai-process-document -processor-id ID -file PATH [-location L] [-project ID]",
	ShortDesc: "runs a local PDF through a processor",
	CommandRun: func() subcommands.CommandRun {
		r := &processDocumentRun{}
		r.init()
		r.Flags.StringVar(&r.file, "file", "", "Path to a local PDF file.")
		return r
	},
}

type processDocumentRun struct {
	processorRun
	file string
}

func (r *processDocumentRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("file", r.file); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, processDocument(a.GetOut(), r.processorName(), r.file))
}

var cmdListProcessors = &subcommands.Command{
	UsageLine: "documentai-list-processors [-location L] [-project ID]",
	ShortDesc: "prints every processor in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listProcessorsRun{}
		r.init()
		return r
	},
}

type listProcessorsRun struct{ processorRun }

func (r *listProcessorsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listProcessors(a.GetOut(), r.parent()))
}

var cmdCreateProcessor = &subcommands.Command{
	UsageLine: "documentai-create-processor -display-name NAME [-location L] [-project ID]",
	ShortDesc: "creates an OCR processor",
	CommandRun: func() subcommands.CommandRun {
		r := &createProcessorRun{}
		r.init()
		r.Flags.StringVar(&r.displayName, "display-name", "", "Display name for the processor.")
		return r
	},
}

type createProcessorRun struct {
	processorRun
	displayName string
}

func (r *createProcessorRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("display-name", r.displayName); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createProcessor(a.GetOut(), r.parent(), r.displayName))
}

var cmdDeleteProcessor = &subcommands.Command{
	UsageLine: "documentai-delete-processor -processor-id ID [-location L] [-project ID]",
	ShortDesc: "deletes a processor",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteProcessorRun{}
		r.init()
		return r
	},
}

type deleteProcessorRun struct{ processorRun }

func (r *deleteProcessorRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteProcessor(a.GetOut(), r.processorName()))
}
