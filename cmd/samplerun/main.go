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

// Command samplerun runs any sample in this repository as a subcommand, one
// per sample, grouped per product.
package main

import (
	"context"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/GoogleCloudPlatform/go-docs-samples/bigquerydatapolicy"
	"github.com/GoogleCloudPlatform/go-docs-samples/bigtable"
	"github.com/GoogleCloudPlatform/go-docs-samples/cloudtasks"
	"github.com/GoogleCloudPlatform/go-docs-samples/computemetadata"
	"github.com/GoogleCloudPlatform/go-docs-samples/dataplex"
	"github.com/GoogleCloudPlatform/go-docs-samples/dataproc"
	"github.com/GoogleCloudPlatform/go-docs-samples/datastore"
	"github.com/GoogleCloudPlatform/go-docs-samples/dlp"
	"github.com/GoogleCloudPlatform/go-docs-samples/documentai"
	"github.com/GoogleCloudPlatform/go-docs-samples/errorreporting"
	"github.com/GoogleCloudPlatform/go-docs-samples/eventarc"
	"github.com/GoogleCloudPlatform/go-docs-samples/kms"
	"github.com/GoogleCloudPlatform/go-docs-samples/logging"
	"github.com/GoogleCloudPlatform/go-docs-samples/monitoring"
	"github.com/GoogleCloudPlatform/go-docs-samples/parametermanager"
	"github.com/GoogleCloudPlatform/go-docs-samples/profiler"
	"github.com/GoogleCloudPlatform/go-docs-samples/pubsub"
	"github.com/GoogleCloudPlatform/go-docs-samples/retail"
	"github.com/GoogleCloudPlatform/go-docs-samples/scheduler"
	"github.com/GoogleCloudPlatform/go-docs-samples/secretmanager"
	"github.com/GoogleCloudPlatform/go-docs-samples/spanner"
	"github.com/GoogleCloudPlatform/go-docs-samples/speech"
	"github.com/GoogleCloudPlatform/go-docs-samples/storagecontrol"
	"github.com/GoogleCloudPlatform/go-docs-samples/translate"
	"github.com/GoogleCloudPlatform/go-docs-samples/vertexai"
)

func application() *cli.Application {
	commands := []*subcommands.Command{
		subcommands.CmdHelp,
	}
	for _, group := range [][]*subcommands.Command{
		bigquerydatapolicy.Commands(),
		bigtable.Commands(),
		cloudtasks.Commands(),
		computemetadata.Commands(),
		dataplex.Commands(),
		dataproc.Commands(),
		datastore.Commands(),
		dlp.Commands(),
		documentai.Commands(),
		errorreporting.Commands(),
		eventarc.Commands(),
		kms.Commands(),
		logging.Commands(),
		monitoring.Commands(),
		parametermanager.Commands(),
		profiler.Commands(),
		pubsub.Commands(),
		retail.Commands(),
		scheduler.Commands(),
		secretmanager.Commands(),
		spanner.Commands(),
		speech.Commands(),
		storagecontrol.Commands(),
		translate.Commands(),
		vertexai.Commands(),
	} {
		commands = append(commands, group...)
	}

	return &cli.Application{
		Name:  "samplerun",
		Title: "Runs Google Cloud Go samples against live services.",
		Context: func(ctx context.Context) context.Context {
			return gologger.StdConfig.Use(ctx)
		},
		Commands: commands,
	}
}

func main() {
	os.Exit(subcommands.Run(application(), nil))
}
