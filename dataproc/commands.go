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

package dataproc

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/samplecli"
)

// Commands returns the samplerun subcommands for Dataproc.
func Commands() []*subcommands.Command {
	return []*subcommands.Command{
		cmdCreateCluster,
		cmdListClusters,
		cmdSubmitJob,
		cmdDeleteCluster,
	}
}

// clusterRun is the base for subcommands addressing one cluster.
type clusterRun struct {
	samplecli.Base
	region  string
	cluster string
}

func (r *clusterRun) init() {
	r.Init()
	r.Flags.StringVar(&r.region, "region", "us-central1", "Dataproc region.")
	r.Flags.StringVar(&r.cluster, "cluster", "", "Name of the cluster.")
}

func (r *clusterRun) check() error {
	if err := r.CheckProject(); err != nil {
		return err
	}
	return samplecli.RequireFlag("cluster", r.cluster)
}

var cmdCreateCluster = &subcommands.Command{
	UsageLine: "dataproc-create-cluster -cluster NAME [-region R] [-project ID]",
	ShortDesc: "creates a cluster",
	CommandRun: func() subcommands.CommandRun {
		r := &createClusterRun{}
		r.init()
		return r
	},
}

type createClusterRun struct{ clusterRun }

func (r *createClusterRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, createCluster(a.GetOut(), r.ProjectID, r.region, r.cluster))
}

var cmdListClusters = &subcommands.Command{
	UsageLine: "dataproc-list-clusters [-region R] [-project ID]",
	ShortDesc: "prints every cluster in a region",
	CommandRun: func() subcommands.CommandRun {
		r := &listClustersRun{}
		r.init()
		return r
	},
}

type listClustersRun struct{ clusterRun }

func (r *listClustersRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.CheckProject(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, listClusters(a.GetOut(), r.ProjectID, r.region))
}

var cmdSubmitJob = &subcommands.Command{
	UsageLine: "dataproc-submit-job -cluster NAME [-region R] [-project ID]",
	ShortDesc: "submits a Spark job to a cluster",
	CommandRun: func() subcommands.CommandRun {
		r := &submitJobRun{}
		r.init()
		return r
	},
}

type submitJobRun struct{ clusterRun }

func (r *submitJobRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, submitJob(a.GetOut(), r.ProjectID, r.region, r.cluster))
}

var cmdDeleteCluster = &subcommands.Command{
	UsageLine: "dataproc-delete-cluster -cluster NAME [-region R] [-project ID]",
	ShortDesc: "deletes a cluster",
	CommandRun: func() subcommands.CommandRun {
		r := &deleteClusterRun{}
		r.init()
		return r
	},
}

type deleteClusterRun struct{ clusterRun }

func (r *deleteClusterRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, r, env)
	if err := r.check(); err != nil {
		return r.Done(ctx, a, err)
	}
	return r.Done(ctx, a, deleteCluster(a.GetOut(), r.ProjectID, r.region, r.cluster))
}
