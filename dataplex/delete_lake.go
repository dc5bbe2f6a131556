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

package dataplex

// [START dataplex_delete_lake]
import (
	"context"
	"fmt"
	"io"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deleteLake deletes a lake, blocking until the long-running operation
// completes. The lake must be empty.
func deleteLake(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/lakes/my-lake"
	ctx := context.Background()
	client, err := dataplex.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dataplex client: %w", err)
	}
	defer client.Close()

	req := &dataplexpb.DeleteLakeRequest{
		Name: name,
	}

	op, err := client.DeleteLake(ctx, req)
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			fmt.Fprintf(w, "Lake %s was not found.\n", name)
			return nil
		case codes.FailedPrecondition:
			fmt.Fprintf(w, "Lake %s still contains zones or assets; remove them first.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete lake: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed waiting for lake deletion: %w", err)
	}
	fmt.Fprintf(w, "Deleted lake %s\n", name)
	return nil
}

// [END dataplex_delete_lake]
