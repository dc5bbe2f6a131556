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

// [START monitoring_write_timeseries]
import (
	"context"
	"fmt"
	"io"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/option"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// writeTimeSeries writes one point of a custom gauge metric.
func writeTimeSeries(w io.Writer, projectID string, value float64, opts ...option.ClientOption) error {
	// projectID := "my-project"
	// value := 3.14
	ctx := context.Background()
	client, err := monitoring.NewMetricClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create metric client: %w", err)
	}
	defer client.Close()

	now := timestamppb.New(time.Now())
	req := &monitoringpb.CreateTimeSeriesRequest{
		Name: "projects/" + projectID,
		TimeSeries: []*monitoringpb.TimeSeries{{
			Metric: &metric.Metric{
				Type: "custom.googleapis.com/my_metric",
				Labels: map[string]string{
					"environment": "SAMPLE",
				},
			},
			Resource: &monitoredres.MonitoredResource{
				Type: "global",
				Labels: map[string]string{
					"project_id": projectID,
				},
			},
			Points: []*monitoringpb.Point{{
				Interval: &monitoringpb.TimeInterval{
					StartTime: now,
					EndTime:   now,
				},
				Value: &monitoringpb.TypedValue{
					Value: &monitoringpb.TypedValue_DoubleValue{DoubleValue: value},
				},
			}},
		}},
	}

	if err := client.CreateTimeSeries(ctx, req); err != nil {
		return fmt.Errorf("failed to write time series: %w", err)
	}
	fmt.Fprintf(w, "Wrote point %v to custom.googleapis.com/my_metric\n", value)
	return nil
}

// [END monitoring_write_timeseries]
