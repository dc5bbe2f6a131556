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

// [START parametermanager_get_param]
import (
	"context"
	"fmt"
	"io"

	parametermanager "cloud.google.com/go/parametermanager/apiv1"
	"cloud.google.com/go/parametermanager/apiv1/parametermanagerpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getParam fetches a parameter's metadata and prints its format.
func getParam(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/global/parameters/my-parameter"
	ctx := context.Background()
	client, err := parametermanager.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create parametermanager client: %w", err)
	}
	defer client.Close()

	req := &parametermanagerpb.GetParameterRequest{
		Name: name,
	}

	result, err := client.GetParameter(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Parameter %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to get parameter: %w", err)
	}
	fmt.Fprintf(w, "Found parameter %s with format %s\n", result.Name, result.Format)
	return nil
}

// [END parametermanager_get_param]
