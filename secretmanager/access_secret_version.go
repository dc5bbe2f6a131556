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

package secretmanager

// [START secretmanager_access_secret_version]
import (
	"context"
	"fmt"
	"hash/crc32"
	"io"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// accessSecretVersion fetches the payload of the given secret version and
// prints it. The most common failure modes get a human-readable explanation
// instead of a raw RPC error.
func accessSecretVersion(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/secrets/my-secret/versions/latest"
	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create secretmanager client: %w", err)
	}
	defer client.Close()

	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	}

	result, err := client.AccessSecretVersion(ctx, req)
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			fmt.Fprintf(w, "Version %s was not found.\n", name)
			return nil
		case codes.FailedPrecondition:
			fmt.Fprintf(w, "Version %s is disabled or destroyed and cannot be accessed.\n", name)
			return nil
		case codes.PermissionDenied:
			fmt.Fprintf(w, "Missing secretmanager.versions.access permission on %s.\n", name)
			return nil
		case codes.InvalidArgument:
			fmt.Fprintf(w, "%s is not a valid version name.\n", name)
			return nil
		}
		return fmt.Errorf("failed to access secret version: %w", err)
	}

	// Verify the payload against the checksum computed by the service.
	crc32c := crc32.MakeTable(crc32.Castagnoli)
	checksum := int64(crc32.Checksum(result.Payload.Data, crc32c))
	if checksum != *result.Payload.DataCrc32C {
		return fmt.Errorf("data corruption detected")
	}

	fmt.Fprintf(w, "Plaintext: %s\n", string(result.Payload.Data))
	return nil
}

// [END secretmanager_access_secret_version]
