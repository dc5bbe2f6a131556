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

// [START pubsub_publish]
import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// publish publishes one message and blocks until the server assigns it an
// ID.
func publish(w io.Writer, projectID, topicID, msg string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// topicID := "my-topic"
	// msg := "hello"
	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pubsub client: %w", err)
	}
	defer client.Close()

	topic := client.Topic(topicID)
	defer topic.Stop()
	result := topic.Publish(ctx, &pubsub.Message{Data: []byte(msg)})

	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	fmt.Fprintf(w, "Published message with ID %s\n", id)
	return nil
}

// [END pubsub_publish]
