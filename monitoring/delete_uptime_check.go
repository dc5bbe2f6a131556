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

// [START monitoring_uptime_check_delete]
import (
	"context"
	"fmt"
	"io"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deleteUptimeCheck deletes an uptime check config.
func deleteUptimeCheck(w io.Writer, name string, opts ...option.ClientOption) error {
	// name := "projects/my-project/uptimeCheckConfigs/my-check"
	ctx := context.Background()
	client, err := monitoring.NewUptimeCheckClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create uptime check client: %w", err)
	}
	defer client.Close()

	req := &monitoringpb.DeleteUptimeCheckConfigRequest{
		Name: name,
	}

	if err := client.DeleteUptimeCheckConfig(ctx, req); err != nil {
		if status.Code(err) == codes.NotFound {
			fmt.Fprintf(w, "Uptime check %s was not found.\n", name)
			return nil
		}
		return fmt.Errorf("failed to delete uptime check config: %w", err)
	}
	fmt.Fprintf(w, "Deleted uptime check %s\n", name)
	return nil
}

// [END monitoring_uptime_check_delete]
