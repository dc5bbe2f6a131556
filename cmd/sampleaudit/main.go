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

// Command sampleaudit cross-checks sample spec files against the region tags
// present in a source tree.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/audit"
)

var (
	verbose     = flag.Bool("verbose", false, "print debug messages to stderr")
	jsonOut     = flag.Bool("json", false, "emit the report as indented JSON on stdout")
	missingOnly = flag.Bool("missing-only", false, "report only declared tags with no matching code")
	orphansOnly = flag.Bool("orphans-only", false, "report only tagged code no spec declares")
)

func usage() {
	fmt.Fprintln(os.Stderr,
		`Cross-checks sample spec files (*.spec.json) against the region tags present
in a source tree: every declared tag must have the expected number of tagged
files per language, every tagged code block must be declared by some spec,
and every [START ...] must have its [END ...].

usage:  sampleaudit [flags] [root]

With no root, audits the current directory. Exits 1 if the audit found
anything wrong.

Flags:`)
	flag.PrintDefaults()
}

func setupLogging(ctx context.Context) context.Context {
	lvl := logging.Warning
	if *verbose {
		lvl = logging.Debug
	}
	return logging.SetLevel(gologger.StdConfig.Use(ctx), lvl)
}

func run(ctx context.Context, root string) (*audit.Report, error) {
	report, err := audit.Validate(ctx, root)
	if err != nil {
		return nil, err
	}
	switch {
	case *missingOnly:
		report.MissingOnly()
	case *orphansOnly:
		report.OrphansOnly()
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return nil, err
		}
	} else {
		report.Format(os.Stdout)
	}
	return report, nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *missingOnly && *orphansOnly {
		fmt.Fprintln(os.Stderr, "sampleaudit: -missing-only and -orphans-only are mutually exclusive")
		os.Exit(2)
	}

	root := "."
	switch flag.NArg() {
	case 0:
	case 1:
		root = flag.Arg(0)
	default:
		usage()
		os.Exit(2)
	}

	ctx := setupLogging(context.Background())
	report, err := run(ctx, root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sampleaudit: %s\n", err)
		os.Exit(1)
	}
	if !report.Clean() {
		os.Exit(1)
	}
}
