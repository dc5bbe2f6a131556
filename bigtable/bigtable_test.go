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

package bigtable

import (
	"bytes"
	"testing"

	"cloud.google.com/go/bigtable/bttest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

// startServer brings up the SDK-shipped in-memory Bigtable server and
// returns client options pointed at it.
func startServer(t testing.TB) []option.ClientOption {
	t.Helper()
	srv, err := bttest.NewServer("localhost:0")
	if err != nil {
		t.Fatalf("failed to start bttest server: %v", err)
	}
	t.Cleanup(srv.Close)

	// Each client dials its own connection: clients built with WithGRPCConn
	// close the provided conn on Close, which would break later samples that
	// reuse these options.
	return []option.ClientOption{
		option.WithEndpoint(srv.Addr),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		option.WithoutAuthentication(),
	}
}

const (
	testProject  = "test-project"
	testInstance = "test-instance"
)

func TestTableLifecycle(t *testing.T) {
	t.Parallel()

	ftt.Run("create, write, read", t, func(t *ftt.Test) {
		opts := startServer(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTable(&buf, testProject, testInstance, "greetings", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created table greetings with column family cf\n"))

		buf.Reset()
		assert.NoErr(t, writeRow(&buf, testProject, testInstance, "greetings", "greeting0", "Hello, Bigtable!", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Wrote row greeting0\n"))

		buf.Reset()
		assert.NoErr(t, readRow(&buf, testProject, testInstance, "greetings", "greeting0", opts...))
		assert.Loosely(t, buf.String(), should.Equal("cf:greeting: Hello, Bigtable!\n"))

		t.Run("missing row prints the not-found hint", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, readRow(&buf, testProject, testInstance, "greetings", "nope", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Row nope was not found.\n"))
		})
	})
}
