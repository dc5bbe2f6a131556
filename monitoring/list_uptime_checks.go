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

package monitoring

// [START monitoring_uptime_check_list_configs]
import (
	"context"
	"fmt"
	"io"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// listUptimeChecks prints every uptime check config in the project.
func listUptimeChecks(w io.Writer, projectID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	ctx := context.Background()
	client, err := monitoring.NewUptimeCheckClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create uptime check client: %w", err)
	}
	defer client.Close()

	req := &monitoringpb.ListUptimeCheckConfigsRequest{
		Parent: "projects/" + projectID,
	}

	it := client.ListUptimeCheckConfigs(ctx, req)
	for {
		config, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list uptime check configs: %w", err)
		}
		fmt.Fprintf(w, "Uptime check %s (%s)\n", config.GetName(), config.GetDisplayName())
	}
	return nil
}

// [END monitoring_uptime_check_list_configs]
