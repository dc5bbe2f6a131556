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

package computemetadata

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/compute/metadata"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

// startServer serves a canned metadata tree and points the metadata package
// at it via GCE_METADATA_HOST. Not parallel-safe because of the env var.
func startServer(t *testing.T) *metadata.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Metadata-Flavor", "Google")
		switch r.URL.Path {
		case "/computeMetadata/v1/project/project-id":
			fmt.Fprint(w, "test-project")
		case "/computeMetadata/v1/instance/name":
			fmt.Fprint(w, "test-vm")
		case "/computeMetadata/v1/instance/zone":
			fmt.Fprint(w, "projects/123456/zones/us-central1-a")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GCE_METADATA_HOST", strings.TrimPrefix(srv.URL, "http://"))
	return metadata.NewClient(srv.Client())
}

func TestPrintProjectID(t *testing.T) {
	ftt.Run("prints the project ID", t, func(t *ftt.Test) {
		c := startServer(t.T)
		var buf bytes.Buffer
		assert.NoErr(t, printProjectID(&buf, c))
		assert.Loosely(t, buf.String(), should.Equal("Project ID: test-project\n"))
	})
}

func TestPrintInstanceMetadata(t *testing.T) {
	ftt.Run("prints name and zone", t, func(t *ftt.Test) {
		c := startServer(t.T)
		var buf bytes.Buffer
		assert.NoErr(t, printInstanceMetadata(&buf, c))
		assert.Loosely(t, buf.String(), should.Equal("Instance test-vm runs in zone us-central1-a\n"))
	})
}
