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

// [START storage_control_get_folder]
import (
	"context"
	"fmt"
	"io"

	control "cloud.google.com/go/storage/control/apiv2"
	"cloud.google.com/go/storage/control/apiv2/controlpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getFolder fetches folder metadata.
func getFolder(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/_/buckets/my-bucket/folders/my-folder/"
	ctx := context.Background()
	client, err := control.NewStorageControlClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create storage control client: %w", err)
	}
	defer client.Close()

	folder, err := client.GetFolder(ctx, &controlpb.GetFolderRequest{Name: name})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Folder %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to get folder: %w", err)
	}
	fmt.Fprintf(w, "Found folder: %s\n", folder.GetName())
	return nil
}

// [END storage_control_get_folder]
