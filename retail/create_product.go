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

// [START retail_create_product]
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

// createProduct creates a primary product on the default branch.
func createProduct(w io.Writer, branch, productID, title string, opts ...option.ClientOption) error {
	// branch := "projects/my-project/locations/global/catalogs/default_catalog/branches/default_branch"
	// productID := "sku-123"
	// title := "Colorful socks"
	ctx := context.Background()
	client, err := retail.NewProductClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create product client: %w", err)
	}
	defer client.Close()

	req := &retailpb.CreateProductRequest{
		Parent:    branch,
		ProductId: productID,
		Product: &retailpb.Product{
			Title:      title,
			Type:       retailpb.Product_PRIMARY,
			Categories: []string{"Apparel"},
			PriceInfo: &retailpb.PriceInfo{
				CurrencyCode: "USD",
				Price:        9.99,
			},
		},
	}

	product, err := client.CreateProduct(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			fmt.Fprintf(w, "Product %s already exists. Pick a different product ID.\n", productID)
			return nil
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	fmt.Fprintf(w, "Created product: %s\n", product.GetName())
	return nil
}

// [END retail_create_product]
