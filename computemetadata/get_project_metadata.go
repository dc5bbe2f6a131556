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

package computemetadata

// [START compute_metadata_get_project_id]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/compute/metadata"
)

// printProjectID queries the metadata server for the project the VM runs in.
func printProjectID(w io.Writer, c *metadata.Client) error {
	ctx := context.Background()
	if c == nil {
		c = metadata.NewClient(nil)
	}

	projectID, err := c.ProjectIDWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to query project ID: %w", err)
	}
	fmt.Fprintf(w, "Project ID: %s\n", projectID)
	return nil
}

// [END compute_metadata_get_project_id]
