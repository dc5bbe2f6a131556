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

// Package samplecli holds the pieces shared by every samplerun subcommand.
//
// Each product directory contributes its subcommands through a Commands()
// function; the commands themselves embed Base to pick up the -project flag
// and uniform error rendering.
package samplecli

import (
	"context"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// Base is the base for every sample subcommand.
type Base struct {
	subcommands.CommandRunBase

	// ProjectID is the Google Cloud project the sample runs against.
	ProjectID string
}

// Init registers the flags shared by every sample subcommand. Call it from
// the CommandRun factory before registering command-specific flags.
func (r *Base) Init() {
	r.Flags.StringVar(&r.ProjectID, "project", os.Getenv("GOOGLE_CLOUD_PROJECT"),
		"Google Cloud project to run the sample against. Defaults to $GOOGLE_CLOUD_PROJECT.")
}

// CheckProject ensures a project was supplied one way or another.
func (r *Base) CheckProject() error {
	if r.ProjectID == "" {
		return errors.New("-project is required (or set GOOGLE_CLOUD_PROJECT)")
	}
	return nil
}

// Done renders err and converts it to a process exit code.
func (r *Base) Done(ctx context.Context, a subcommands.Application, err error) int {
	if err != nil {
		logging.Errorf(ctx, "%s", err)
		return 1
	}
	return 0
}

// RequireFlag returns an error if a required string flag was left empty.
func RequireFlag(name, value string) error {
	if value == "" {
		return errors.Fmt("-%s is required", name)
	}
	return nil
}
