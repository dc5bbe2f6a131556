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

package storagecontrol

// [START storage_control_get_storage_layout]
import (
	"context"
	"fmt"
	"io"

	control "cloud.google.com/go/storage/control/apiv2"
	"cloud.google.com/go/storage/control/apiv2/controlpb"
	"google.golang.org/api/option"
)

// getStorageLayout reports whether a bucket has hierarchical namespace
// enabled.
func getStorageLayout(w io.Writer, bucket string, opts ...option.ClientOption) error {
	// bucket := "projects/_/buckets/my-bucket"
	ctx := context.Background()
	client, err := control.NewStorageControlClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create storage control client: %w", err)
	}
	defer client.Close()

	layout, err := client.GetStorageLayout(ctx, &controlpb.GetStorageLayoutRequest{
		Name: bucket + "/storageLayout",
	})
	if err != nil {
		return fmt.Errorf("failed to get storage layout: %w", err)
	}
	fmt.Fprintf(w, "Bucket location: %s, hierarchical namespace enabled: %t\n",
		layout.GetLocation(), layout.GetHierarchicalNamespace().GetEnabled())
	return nil
}

// [END storage_control_get_storage_layout]
