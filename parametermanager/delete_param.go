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

package parametermanager

// [START parametermanager_delete_param]
import (
	"context"
	"fmt"
	"io"

	parametermanager "cloud.google.com/go/parametermanager/apiv1"
	"cloud.google.com/go/parametermanager/apiv1/parametermanagerpb"
	"google.golang.org/api/option"
)

// deleteParam deletes a parameter and all of its versions.
func deleteParam(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/global/parameters/my-parameter"
	ctx := context.Background()
	client, err := parametermanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create parametermanager client: %w", err)
	}
	defer client.Close()

	req := &parametermanagerpb.DeleteParameterRequest{
		Name: name,
	}

	if err := client.DeleteParameter(ctx, req); err != nil {
		return fmt.Errorf("failed to delete parameter: %w", err)
	}
	fmt.Fprintf(w, "Deleted parameter %s\n", name)
	return nil
}

// [END parametermanager_delete_param]
