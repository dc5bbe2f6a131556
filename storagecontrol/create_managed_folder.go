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

// [START storage_control_managed_folder_create]
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

// createManagedFolder creates a managed folder, on which IAM policy can be
// set independently of the bucket.
func createManagedFolder(w io.Writer, bucket, folderID string, opts ...option.ClientOption) error {
	// bucket := "projects/_/buckets/my-bucket"
	// folderID := "my-managed-folder"
	ctx := context.Background()
	client, err := control.NewStorageControlClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create storage control client: %w", err)
	}
	defer client.Close()

	req := &controlpb.CreateManagedFolderRequest{
		Parent:          bucket,
		ManagedFolderId: folderID,
	}

	folder, err := client.CreateManagedFolder(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "Managed folder %s already exists in %s.\n", folderID, bucket)
			return nil
		}
		return fmt.Errorf("failed to create managed folder: %w", err)
	}
	fmt.Fprintf(w, "Created managed folder: %s\n", folder.GetName())
	return nil
}

// [END storage_control_managed_folder_create]
