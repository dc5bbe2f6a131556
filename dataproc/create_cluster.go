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

// [START dataproc_create_cluster]
import (
	"context"
	"fmt"
	"io"

	dataproc "cloud.google.com/go/dataproc/v2/apiv1"
	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"google.golang.org/api/option"
)

// createCluster creates a small cluster in the given region. The cluster
// controller endpoint is regional, so the client must be pointed at the
// region explicitly. Cluster creation is a long-running operation; the call
// blocks until the cluster is running.
func createCluster(w io.Writer, projectID, region, name string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// region := "us-central1"
	// name := "my-cluster"
	ctx := context.Background()
	endpoint := fmt.Sprintf("%s-dataproc.googleapis.com:443", region)
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)
	client, err := dataproc.NewClusterControllerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cluster controller client: %w", err)
	}
	defer client.Close()

	req := &dataprocpb.CreateClusterRequest{
		ProjectId: projectID,
		Region:    region,
		Cluster: &dataprocpb.Cluster{
			ProjectId:   projectID,
			ClusterName: name,
			Config: &dataprocpb.ClusterConfig{
				MasterConfig: &dataprocpb.InstanceGroupConfig{
					NumInstances:   1,
					MachineTypeUri: "n1-standard-2",
				},
				WorkerConfig: &dataprocpb.InstanceGroupConfig{
					NumInstances:   2,
					MachineTypeUri: "n1-standard-2",
				},
			},
		},
	}

	op, err := client.CreateCluster(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create cluster: %w", err)
	}
	result, err := op.Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed waiting for cluster creation: %w", err)
	}
	fmt.Fprintf(w, "Created cluster: %s\n", result.ClusterName)
	return nil
}

// [END dataproc_create_cluster]
