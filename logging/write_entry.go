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

package logging

// [START logging_write_log_entry]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"
)

// writeEntry writes one text log entry synchronously.
func writeEntry(w io.Writer, projectID, logID, text string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// logID := "my-log"
	// text := "something happened"
	ctx := context.Background()
	client, err := logging.NewClient(ctx, "projects/"+projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create logging client: %w", err)
	}
	defer client.Close()

	logger := client.Logger(logID)
	if err := logger.LogSync(ctx, logging.Entry{
		Payload:  text,
		Severity: logging.Info,
	}); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}
	fmt.Fprintf(w, "Wrote log entry to %s\n", logID)
	return nil
}

// [END logging_write_log_entry]
