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

package pubsub

// [START pubsub_create_pull_subscription]
import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// createSubscription creates a pull subscription on an existing topic.
func createSubscription(w io.Writer, projectID, subID, topicID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// subID := "my-sub"
	// topicID := "my-topic"
	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pubsub client: %w", err)
	}
	defer client.Close()

	sub, err := client.CreateSubscription(ctx, subID, pubsub.SubscriptionConfig{
		Topic:       client.Topic(topicID),
		AckDeadline: 20 * time.Second,
	})
	if err != nil {
		switch status.Code(err) {
		case codes.AlreadyExists:
			fmt.Fprintf(w, "Subscription %s already exists.\n", subID)
			return nil
		case codes.NotFound:
			fmt.Fprintf(w, "Topic %s does not exist. Create it first.\n", topicID)
			return nil
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	fmt.Fprintf(w, "Created subscription: %s\n", sub.String())
	return nil
}

// [END pubsub_create_pull_subscription]
