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

package eventarc

// [START eventarc_get_trigger]
import (
	"context"
	"fmt"
	"io"

	eventarc "cloud.google.com/go/eventarc/apiv1"
	"cloud.google.com/go/eventarc/apiv1/eventarcpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getTrigger fetches a trigger and prints its destination.
func getTrigger(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/triggers/my-trigger"
	ctx := context.Background()
	client, err := eventarc.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create eventarc client: %w", err)
	}
	defer client.Close()

	req := &eventarcpb.GetTriggerRequest{
		Name: name,
	}

	result, err := client.GetTrigger(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Trigger %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to get trigger: %w", err)
	}
	fmt.Fprintf(w, "Found trigger %s routing to %s\n", result.Name, result.GetDestination().GetCloudRun().GetService())
	return nil
}

// [END eventarc_get_trigger]
