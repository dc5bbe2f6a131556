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

package kms

// [START kms_list_keys]
import (
	"context"
	"fmt"
	"io"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listCryptoKeys prints every key on the given key ring.
func listCryptoKeys(w io.Writer, parent string, opts ...option.ClientOption) error {
	// parent := "projects/my-project/locations/us-east1/keyRings/my-key-ring"
	ctx := context.Background()
	client, err := kms.NewKeyManagementClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create kms client: %w", err)
	}
	defer client.Close()

	req := &kmspb.ListCryptoKeysRequest{
		Parent: parent,
	}

	it := client.ListCryptoKeys(ctx, req)
	for {
		key, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
		fmt.Fprintf(w, "Found key: %s\n", key.Name)
	}
	return nil
}

// [END kms_list_keys]
