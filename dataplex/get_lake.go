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

// [START dataplex_get_lake]
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

// getLake fetches a lake and prints its state.
func getLake(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/lakes/my-lake"
	ctx := context.Background()
	client, err := dataplex.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create dataplex client: %w", err)
	}
	defer client.Close()

	req := &dataplexpb.GetLakeRequest{
		Name: name,
	}

	result, err := client.GetLake(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Lake %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to get lake: %w", err)
	}
	fmt.Fprintf(w, "Found lake %s (state: %s)\n", result.Name, result.State)
	return nil
}

// [END dataplex_get_lake]
