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

import (
	"bytes"
	"testing"

	"cloud.google.com/go/pubsub/pstest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

// startServer brings up the SDK-shipped in-memory Pub/Sub server and returns
// client options pointed at it.
func startServer(t testing.TB) (*pstest.Server, []option.ClientOption) {
	t.Helper()
	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	// Each client dials its own connection: clients built with WithGRPCConn
	// close the provided conn on Close, which would break later samples that
	// reuse these options.
	return srv, []option.ClientOption{
		option.WithEndpoint(srv.Addr),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		option.WithoutAuthentication(),
	}
}

const testProject = "test-project"

func TestCreateTopic(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateTopic", t, func(t *ftt.Test) {
		_, opts := startServer(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTopic(&buf, testProject, "my-topic", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Created topic: projects/test-project/topics/my-topic\n"))

		t.Run("creating again prints the already-exists hint", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, createTopic(&buf, testProject, "my-topic", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Topic my-topic already exists.\n"))
		})
	})
}

func TestCreateSubscription(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateSubscription", t, func(t *ftt.Test) {
		_, opts := startServer(t)
		var buf bytes.Buffer

		t.Run("creates on an existing topic", func(t *ftt.Test) {
			assert.NoErr(t, createTopic(&buf, testProject, "my-topic", opts...))
			buf.Reset()
			assert.NoErr(t, createSubscription(&buf, testProject, "my-sub", "my-topic", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Created subscription: projects/test-project/subscriptions/my-sub\n"))
		})

		t.Run("prints a hint when the topic is missing", func(t *ftt.Test) {
			assert.NoErr(t, createSubscription(&buf, testProject, "my-sub", "nope", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Topic nope does not exist. Create it first.\n"))
		})
	})
}

func TestPublish(t *testing.T) {
	t.Parallel()

	ftt.Run("publishes one message", t, func(t *ftt.Test) {
		srv, opts := startServer(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTopic(&buf, testProject, "my-topic", opts...))

		buf.Reset()
		assert.NoErr(t, publish(&buf, testProject, "my-topic", "hello", opts...))
		assert.Loosely(t, buf.String(), should.ContainSubstring("Published message with ID "))

		msgs := srv.Messages()
		assert.Loosely(t, len(msgs), should.Equal(1))
		assert.Loosely(t, string(msgs[0].Data), should.Equal("hello"))
	})
}

func TestListTopics(t *testing.T) {
	t.Parallel()

	ftt.Run("prints every topic", t, func(t *ftt.Test) {
		_, opts := startServer(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTopic(&buf, testProject, "topic-a", opts...))
		assert.NoErr(t, createTopic(&buf, testProject, "topic-b", opts...))

		buf.Reset()
		assert.NoErr(t, listTopics(&buf, testProject, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Topic: projects/test-project/topics/topic-a\n"+
				"Topic: projects/test-project/topics/topic-b\n"))
	})
}
