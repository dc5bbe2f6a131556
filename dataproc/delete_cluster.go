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

// [START dataproc_delete_cluster]
import (
	"context"
	"fmt"
	"io"

	dataproc "cloud.google.com/go/dataproc/v2/apiv1"
	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deleteCluster deletes a Dataproc cluster and waits for the deletion to
// finish.
func deleteCluster(w io.Writer, projectID, region, clusterName string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// region := "us-central1"
	// clusterName := "my-cluster"
	ctx := context.Background()
	endpoint := fmt.Sprintf("%s-dataproc.googleapis.com:443", region)
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)
	client, err := dataproc.NewClusterControllerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cluster controller client: %w", err)
	}
	defer client.Close()

	req := &dataprocpb.DeleteClusterRequest{
		ProjectId:   projectID,
		Region:      region,
		ClusterName: clusterName,
	}

	op, err := client.DeleteCluster(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Cluster %s was not found in %s.\n", clusterName, region)
			return nil
		}
		return fmt.Errorf("failed to delete cluster: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for cluster deletion: %w", err)
	}
	fmt.Fprintf(w, "Deleted cluster: %s\n", clusterName)
	return nil
}

// [END dataproc_delete_cluster]
