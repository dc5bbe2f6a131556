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

// [START retail_update_product]
import (
	"context"
	"fmt"
	"io"

	retail "cloud.google.com/go/retail/apiv2"
	"cloud.google.com/go/retail/apiv2/retailpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// updateProduct changes a product's price, touching nothing else via the
// update mask.
func updateProduct(w io.Writer, name string, price float32, opts ...option.ClientOption) error {
	// name := "projects/my-project/locations/global/catalogs/default_catalog/branches/default_branch/products/sku-123"
	// price := 12.99
	ctx := context.Background()
	client, err := retail.NewProductClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create product client: %w", err)
	}
	defer client.Close()

	req := &retailpb.UpdateProductRequest{
		Product: &retailpb.Product{
			Name: name,
			PriceInfo: &retailpb.PriceInfo{
				CurrencyCode: "USD",
				Price:        price,
			},
		},
		UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"price_info"}},
	}

	product, err := client.UpdateProduct(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	fmt.Fprintf(w, "Updated product %s, price is now %.2f %s\n", product.GetName(),
		product.GetPriceInfo().GetPrice(), product.GetPriceInfo().GetCurrencyCode())
	return nil
}

// [END retail_update_product]
