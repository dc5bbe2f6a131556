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

// [START secretmanager_destroy_secret_version]
import (
	"context"
	"fmt"
	"io"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// destroySecretVersion destroys the given secret version, wiping its
// payload. Other versions of the secret are unaffected.
func destroySecretVersion(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/secrets/my-secret/versions/5"
	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create secretmanager client: %w", err)
	}
	defer client.Close()

	req := &secretmanagerpb.DestroySecretVersionRequest{
		Name: name,
	}

	result, err := client.DestroySecretVersion(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to destroy secret version: %w", err)
	}
	fmt.Fprintf(w, "Destroyed secret version: %s\n", result.Name)
	return nil
}

// [END secretmanager_destroy_secret_version]
