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

// [START dataproc_submit_job]
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

// submitJob submits a SparkPi job to an existing cluster.
func submitJob(w io.Writer, projectID, region, clusterName string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// region := "us-central1"
	// clusterName := "my-cluster"
	ctx := context.Background()
	endpoint := fmt.Sprintf("%s-dataproc.googleapis.com:443", region)
	opts = append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)
	client, err := dataproc.NewJobControllerClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create job controller client: %w", err)
	}
	defer client.Close()

	req := &dataprocpb.SubmitJobRequest{
		ProjectId: projectID,
		Region:    region,
		Job: &dataprocpb.Job{
			Placement: &dataprocpb.JobPlacement{
				ClusterName: clusterName,
			},
			TypeJob: &dataprocpb.Job_SparkJob{
				SparkJob: &dataprocpb.SparkJob{
					Driver: &dataprocpb.SparkJob_MainClass{
						MainClass: "org.apache.spark.examples.SparkPi",
					},
					JarFileUris: []string{"file:///usr/lib/spark/examples/jars/spark-examples.jar"},
					Args:        []string{"1000"},
				},
			},
		},
	}

	result, err := client.SubmitJob(ctx, req)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Cluster %s was not found in %s.\n", clusterName, region)
			return nil
		}
		return fmt.Errorf("failed to submit job: %w", err)
	}
	fmt.Fprintf(w, "Submitted job %s\n", result.GetReference().GetJobId())
	return nil
}

// [END dataproc_submit_job]
