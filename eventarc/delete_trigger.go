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

// [START eventarc_delete_trigger]
import (
	"context"
	"fmt"
	"io"

	eventarc "cloud.google.com/go/eventarc/apiv1"
	"cloud.google.com/go/eventarc/apiv1/eventarcpb"
	"google.golang.org/api/option"
)

// deleteTrigger deletes a trigger, blocking until the long-running
// operation completes.
func deleteTrigger(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/us-central1/triggers/my-trigger"
	ctx := context.Background()
	client, err := eventarc.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create eventarc client: %w", err)
	}
	defer client.Close()

	req := &eventarcpb.DeleteTriggerRequest{
		Name:         name,
		AllowMissing: true,
	}

	op, err := client.DeleteTrigger(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed waiting for trigger deletion: %w", err)
	}
	fmt.Fprintf(w, "Deleted trigger %s\n", name)
	return nil
}

// [END eventarc_delete_trigger]
