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

package bigquerydatapolicy

import (
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for BigQuery Data Policies.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateDataPolicy,
		cmdGetDataPolicy,
		cmdListDataPolicies,
		cmdUpdateDataPolicy,
		cmdRenameDataPolicy,
		cmdDeleteDataPolicy,
	}
}

// policyRun is the base for subcommands addressing one data policy.
type policyRun struct {
	samplecli.Base
	location string
	policyID string
}

func (r *policyRun) init() {
	r.Init()
	r.Flags.StringVar(&r.location, "location", "us", "BigQuery location of the data policy.")
	r.Flags.StringVar(&r.policyID, "policy-id", "", "ID of the data policy.")
}

func (r *policyRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("policy-id", r.policyID)
}

func (r *policyRun) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", r.ProjectID, r.location)
}

func (r *policyRun) policyName() string {
	return r.parent() + "/dataPolicies/" + r.policyID
}

var cmdCreateDataPolicy = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-create-data-policy -policy-id ID [-location L] [-project ID]",
	ShortDesc: "creates a SHA-256 data masking policy",
	CommandRun: func() subcommands.CommandRun {
		r := &createDataPolicyRun{}
		r.init()
		return r
	},
}

type createDataPolicyRun struct{ policyRun }

func (r *createDataPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createDataPolicy(a.GetOut(), r.parent(), r.policyID))
}

var cmdGetDataPolicy = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-get-data-policy -policy-id ID [-location L] [-project ID]",
	ShortDesc: "fetches a data policy",
	CommandRun: func() subcommands.CommandRun {
		r := &getDataPolicyRun{}
		r.init()
		return r
	},
}

type getDataPolicyRun struct{ policyRun }

func (r *getDataPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, getDataPolicy(a.GetOut(), r.policyName()))
}

var cmdListDataPolicies = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-list-data-policies [-location L] [-project ID]",
	ShortDesc: "prints every data policy in a location",
	CommandRun: func() subcommands.CommandRun {
		r := &listDataPoliciesRun{}
		r.init()
		return r
	},
}

type listDataPoliciesRun struct{ policyRun }

func (r *listDataPoliciesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listDataPolicies(a.GetOut(), r.parent()))
}

var cmdUpdateDataPolicy = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-update-data-policy -policy-id ID [-location L] [-project ID]",
	ShortDesc: "switches a data policy's masking expression to ALWAYS_NULL",
	CommandRun: func() subcommands.CommandRun {
		r := &updateDataPolicyRun{}
		r.init()
		return r
	},
}

type updateDataPolicyRun struct{ policyRun }

func (r *updateDataPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, updateDataPolicy(a.GetOut(), r.policyName()))
}

var cmdRenameDataPolicy = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-rename-data-policy -policy-id ID -new-id ID [-location L] [-project ID]",
	ShortDesc: "renames a data policy",
	CommandRun: func() subcommands.CommandRun {
		r := &renameDataPolicyRun{}
		r.init()
		r.Flags.StringVar(&r.newID, "new-id", "", "New ID for the data policy.")
		return r
	},
}

type renameDataPolicyRun struct {
	policyRun
	newID string
}

func (r *renameDataPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	if err := samplecli.RequireFlag("new-id", r.newID); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, renameDataPolicy(a.GetOut(), r.policyName(), r.newID))
}

var cmdDeleteDataPolicy = &subcommands.Command{
	UsageLine: "bigquerydatapolicy-delete-data-policy -policy-id ID [-location L] [-project ID]",
	ShortDesc: "deletes a data policy",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteDataPolicyRun{}
		r.init()
		return r
	},
}

type deleteDataPolicyRun struct{ policyRun }

func (r *deleteDataPolicyRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteDataPolicy(a.GetOut(), r.policyName()))
}
