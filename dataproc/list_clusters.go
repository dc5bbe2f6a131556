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

// [START dataproc_list_clusters]
import (
	"context"
	"fmt"
	"io"

	dataproc "cloud.google.com/go/dataproc/v2/apiv1"
	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listClusters prints every cluster in the given region with its state.
func listClusters(w io.Writer, projectID, region string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// region := "us-central1"
	ctx := context.Background()
	endpoint := fmt.Sprintf("%s-dataproc.googleapis.com:443", region)
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)
	client, err := dataproc.NewClusterControllerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create cluster controller client: %w", err)
	}
	defer client.Close()

	req := &dataprocpb.ListClustersRequest{
		ProjectId: projectID,
		Region:    region,
	}

	it := client.ListClusters(ctx, req)
	for {
		cluster, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list clusters: %w", err)
		}
		fmt.Fprintf(w, "Cluster %s (state: %s)\n", cluster.ClusterName, cluster.GetStatus().GetState())
	}
	return nil
}

// [END dataproc_list_clusters]
