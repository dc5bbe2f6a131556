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

package profiler

// [START profiler_start_agent]
import (
	"fmt"
	"io"

	"cloud.google.com/go/profiler"
	"google.golang.org/api/option"
)

// startAgent starts the in-process profiling agent. The agent keeps running
// for the life of the process; Start is called at most once.
func startAgent(w io.Writer, projectID, service string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// service := "my-service"
	cfg := profiler.Config{
		Service:        service,
		ServiceVersion: "1.0.0",
		ProjectID:      projectID,
	}

	if err := profiler.Start(cfg, opts...); err != nil {
		return fmt.Errorf("failed to start profiler agent: %w", err)
	}
	fmt.Fprintf(w, "Profiler agent started for %s\n", service)
	return nil
}

// [END profiler_start_agent]
