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

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for retail search.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateProduct,
		cmdGetProduct,
		cmdUpdateProduct,
		cmdDeleteProduct,
		cmdSearch,
	}
}

// productRun is the base for subcommands addressing one product in the
// default catalog.
type productRun struct {
	samplecli.Base
	productID string
}

func (r *productRun) init() {
	r.Init()
	r.Flags.StringVar(&r.productID, "product-id", "", "ID of the product.")
}

func (r *productRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("product-id", r.productID)
}

func (r *productRun) catalog() string {
	return fmt.Sprintf("projects/%s/locations/global/catalogs/default_catalog", r.ProjectID)
}

func (r *productRun) branch() string {
	return r.catalog() + "/branches/default_branch"
}

func (r *productRun) productName() string {
	return r.branch() + "/products/" + r.productID
}

var cmdCreateProduct = &subcommands.Command{
	UsageLine: "retail-create-product -product-id ID -title T [-project ID]",
	ShortDesc: "creates a product",
	CommandRun: func() subcommands.CommandRun {
		r := &createProductRun{}
		r.init()
		r.Flags.StringVar(&r.title, "title", "", "Title of the product.")
		return r
	},
}

type createProductRun struct {
	productRun
	title string
}

func (r *createProductRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("title", r.title); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createProduct(a.GetOut(), r.branch(), r.productID, r.title))
}

var cmdGetProduct = &subcommands.Command{
	UsageLine: "retail-get-product -product-id ID [-project ID]",
	ShortDesc: "prints a product",
	CommandRun: func() subcommands.CommandRun {
		r := &getProductRun{}
		r.init()
		return r
	},
}

type getProductRun struct{ productRun }

func (r *getProductRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getProduct(a.GetOut(), r.productName()))
}

var cmdUpdateProduct = &subcommands.Command{
	UsageLine: "retail-update-product -product-id ID -price P [-project ID]",
	ShortDesc: "updates a product's price",
	CommandRun: func() subcommands.CommandRun {
		r := &updateProductRun{}
		r.init()
		r.Flags.Float64Var(&r.price, "price", 12.99, "New price in USD.")
		return r
	},
}

type updateProductRun struct {
	productRun
	price float64
}

func (r *updateProductRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, updateProduct(a.GetOut(), r.productName(), float32(r.price)))
}

var cmdDeleteProduct = &subcommands.Command{
	UsageLine: "retail-delete-product -product-id ID [-project ID]",
	ShortDesc: "deletes a product",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteProductRun{}
		r.init()
		return r
	},
}

type deleteProductRun struct{ productRun }

func (r *deleteProductRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteProduct(a.GetOut(), r.productName()))
}

var cmdSearch = &subcommands.Command{
	UsageLine: "retail-search -query Q [-project ID]",
	ShortDesc: "searches the default catalog",
	CommandRun: func() subcommands.CommandRun {
		r := &searchRun{}
		r.init()
		r.Flags.StringVar(&r.query, "query", "", "Search query.")
		return r
	},
}

type searchRun struct {
	productRun
	query string
}

func (r *searchRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("query", r.query); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, search(a.GetOut(), r.catalog(), r.query))
}
