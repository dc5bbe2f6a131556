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

// [START monitoring_read_timeseries_simple]
import (
	"context"
	"fmt"
	"io"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// listTimeSeries prints the points of the custom gauge metric written in the
// last hour.
func listTimeSeries(w io.Writer, projectID string, opts ...option.ClientOption) error {
	// projectID := "my-project"
	ctx := context.Background()
	client, err := monitoring.NewMetricClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create metric client: %w", err)
	}
	defer client.Close()

	now := time.Now()
	req := &monitoringpb.ListTimeSeriesRequest{
		Name:   "projects/" + projectID,
		Filter: `metric.type = "custom.googleapis.com/my_metric"`,
		Interval: &monitoringpb.TimeInterval{
			StartTime: timestamppb.New(now.Add(-time.Hour)),
			EndTime:   timestamppb.New(now),
		},
	}

	it := client.ListTimeSeries(ctx, req)
	for {
		ts, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list time series: %w", err)
		}
		for _, p := range ts.GetPoints() {
			fmt.Fprintf(w, "%s: %v\n", ts.GetMetric().GetType(), p.GetValue().GetDoubleValue())
		}
	}
	return nil
}

// [END monitoring_read_timeseries_simple]
