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

// [START logging_list_log_entries]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/logging/logadmin"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listEntries prints the payloads of a log's entries.
func listEntries(w io.Writer, projectID, logID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// logID := "my-log"
	ctx := context.Background()
	client, err := logadmin.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create logadmin client: %w", err)
	}
	defer client.Close()

	filter := fmt.Sprintf("logName = %q", "projects/"+projectID+"/logs/"+logID)
	it := client.Entries(ctx, logadmin.Filter(filter))
	for {
		entry, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list log entries: %w", err)
		}
		fmt.Fprintf(w, "Entry: %v\n", entry.Payload)
	}
	return nil
}

// [END logging_list_log_entries]
