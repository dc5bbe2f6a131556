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

// [START eventarc_create_trigger]
import (
	"context"
	"fmt"
	"io"

	eventarc "cloud.google.com/go/eventarc/apiv1"
	"cloud.google.com/go/eventarc/apiv1/eventarcpb"
	"google.golang.org/api/option"
)

// createTrigger creates a trigger that routes Pub/Sub messages on a new
// topic to the given Cloud Run service. Trigger creation is a long-running
// operation; the call blocks until it completes.
func createTrigger(w io.Writer, parent, id, service string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-central1"
	// id := "my-trigger"
	// service := "my-service"
	ctx := context.Background()
	client, err := eventarc.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create eventarc client: %w", err)
	}
	defer client.Close()

	req := &eventarcpb.CreateTriggerRequest{
		Parent:    parent,
		TriggerId: id,
		Trigger: &eventarcpb.Trigger{
			Name: parent + "/triggers/" + id,
			EventFilters: []*eventarcpb.EventFilter{
				{
					Attribute: "type",
					Value:     "google.cloud.pubsub.topic.v1.messagePublished",
				},
			},
			Destination: &eventarcpb.Destination{
				Descriptor_: &eventarcpb.Destination_CloudRun{
					CloudRun: &eventarcpb.CloudRun{
						Service: service,
						Region:  "us-central1",
					},
				},
			},
		},
	}

	op, err := client.CreateTrigger(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create trigger: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for trigger creation: %w", err)
	}
	fmt.Fprintf(w, "Created trigger: %s\n", result.Name)
	return nil
}

// [END eventarc_create_trigger]
