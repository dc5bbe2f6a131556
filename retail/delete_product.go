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

package retail

// [START retail_delete_product]
import (
	"context"
	"fmt"
	"io"

	retail "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deleteProduct deletes a product from its branch.
func deleteProduct(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/global/catalogs/default_catalog/branches/default_branch/products/sku-123"
	ctx := context.Background()
	client, err := retail.NewProductClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create product client: %w", err)
	}
	defer client.Close()

	if err := client.DeleteProduct(ctx, &retailpb.DeleteProductRequest{Name: name}); err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Product %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	fmt.Fprintf(w, "Deleted product %s\n", name)
	return nil
}

// [END retail_delete_product]
