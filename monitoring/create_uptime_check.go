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

// [START monitoring_uptime_check_create]
import (
	"context"
	"fmt"
	"io"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/option"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/durationpb"
)

// createUptimeCheck creates an HTTPS uptime check against the given host,
// probed once a minute.
func createUptimeCheck(w io.Writer, projectID, displayName, host string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// displayName := "my-uptime-check"
	// host := "example.com"
	ctx := context.Background()
	client, err := monitoring.NewUptimeCheckClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create uptime check client: %w", err)
	}
	defer client.Close()

	req := &monitoringpb.CreateUptimeCheckConfigRequest{
		Parent: "projects/" + projectID,
		UptimeCheckConfig: &monitoringpb.UptimeCheckConfig{
			DisplayName: displayName,
			Resource: &monitoringpb.UptimeCheckConfig_MonitoredResource{
				MonitoredResource: &monitoredres.MonitoredResource{
					Type: "uptime_url",
					Labels: map[string]string{
						"project_id": projectID,
						"host":       host,
					},
				},
			},
			CheckRequestType: &monitoringpb.UptimeCheckConfig_HttpCheck_{
				HttpCheck: &monitoringpb.UptimeCheckConfig_HttpCheck{
					Path:   "/",
					Port:   443,
					UseSsl: true,
				},
			},
			Period:  durationpb.New(60 * time.Second),
			Timeout: durationpb.New(10 * time.Second),
		},
	}

	config, err := client.CreateUptimeCheckConfig(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create uptime check config: %w", err)
	}
	fmt.Fprintf(w, "Created uptime check: %s\n", config.GetName())
	return nil
}

// [END monitoring_uptime_check_create]
