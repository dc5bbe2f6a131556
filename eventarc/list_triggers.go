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

// [START eventarc_list_triggers]
import (
	"context"
	"fmt"
	"io"

	eventarc "cloud.google.com/go/eventarc/apiv1"
	"cloud.google.com/go/eventarc/apiv1/eventarcpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listTriggers prints every trigger in the given location.
func listTriggers(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	ctx := context.Background()
	client, err := eventarc.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create eventarc client: %w", err)
	}
	defer client.Close()

	req := &eventarcpb.ListTriggersRequest{
		Parent: parent,
	}

	it := client.ListTriggers(ctx, req)
	for {
		trigger, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list triggers: %w", err)
		}
		fmt.Fprintf(w, "Found trigger: %s\n", trigger.Name)
	}
	return nil
}

// [END eventarc_list_triggers]
