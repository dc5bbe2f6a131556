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

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeUptimeCheck is an in-memory UptimeCheckService.
type fakeUptimeCheck struct {
	monitoringpb.UnimplementedUptimeCheckServiceServer

	mu      sync.Mutex
	configs map[string]*monitoringpb.UptimeCheckConfig
}

func (f *fakeUptimeCheck) CreateUptimeCheckConfig(ctx context.Context, req *monitoringpb.CreateUptimeCheckConfigRequest) (*monitoringpb.UptimeCheckConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	config := proto.Clone(req.GetUptimeCheckConfig()).(*monitoringpb.UptimeCheckConfig)
	config.Name = fmt.Sprintf("%s/uptimeCheckConfigs/check-%d", req.GetParent(), len(f.configs)+1)
	f.configs[config.Name] = config
	return proto.Clone(config).(*monitoringpb.UptimeCheckConfig), nil
}

func (f *fakeUptimeCheck) ListUptimeCheckConfigs(ctx context.Context, req *monitoringpb.ListUptimeCheckConfigsRequest) (*monitoringpb.ListUptimeCheckConfigsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &monitoringpb.ListUptimeCheckConfigsResponse{}
	for _, name := range names {
		resp.UptimeCheckConfigs = append(resp.UptimeCheckConfigs,
			proto.Clone(f.configs[name]).(*monitoringpb.UptimeCheckConfig))
	}
	return resp, nil
}

func (f *fakeUptimeCheck) DeleteUptimeCheckConfig(ctx context.Context, req *monitoringpb.DeleteUptimeCheckConfigRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.configs[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "config %s not found", req.GetName())
	}
	delete(f.configs, req.GetName())
	return &emptypb.Empty{}, nil
}

// fakeMetric is an in-memory MetricService storing written series verbatim.
type fakeMetric struct {
	monitoringpb.UnimplementedMetricServiceServer

	mu     sync.Mutex
	series []*monitoringpb.TimeSeries
}

func (f *fakeMetric) CreateTimeSeries(ctx context.Context, req *monitoringpb.CreateTimeSeriesRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ts := range req.GetTimeSeries() {
		if len(ts.GetPoints()) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "time series must carry a point")
		}
		f.series = append(f.series, proto.Clone(ts).(*monitoringpb.TimeSeries))
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeMetric) ListTimeSeries(ctx context.Context, req *monitoringpb.ListTimeSeriesRequest) (*monitoringpb.ListTimeSeriesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resp := &monitoringpb.ListTimeSeriesResponse{}
	for _, ts := range f.series {
		resp.TimeSeries = append(resp.TimeSeries, proto.Clone(ts).(*monitoringpb.TimeSeries))
	}
	return resp, nil
}

func startFakes(t testing.TB) (*fakeUptimeCheck, *fakeMetric, []option.ClientOption) {
	uc := &fakeUptimeCheck{configs: map[string]*monitoringpb.UptimeCheckConfig{}}
	m := &fakeMetric{}
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		monitoringpb.RegisterUptimeCheckServiceServer(srv, uc)
		monitoringpb.RegisterMetricServiceServer(srv, m)
	})
	return uc, m, opts
}

const testProject = "test-project"

func TestUptimeCheckLifecycle(t *testing.T) {
	t.Parallel()

	ftt.Run("create, list, delete", t, func(t *ftt.Test) {
		fake, _, opts := startFakes(t)
		var buf bytes.Buffer
		name := "projects/" + testProject + "/uptimeCheckConfigs/check-1"
		assert.NoErr(t, createUptimeCheck(&buf, testProject, "my-check", "example.com", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created uptime check: "+name+"\n"))

		buf.Reset()
		assert.NoErr(t, listUptimeChecks(&buf, testProject, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Uptime check "+name+" (my-check)\n"))

		buf.Reset()
		assert.NoErr(t, deleteUptimeCheck(&buf, name, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted uptime check "+name+"\n"))
		assert.Loosely(t, fake.configs, should.BeEmpty)

		t.Run("deleting again prints the not-found hint", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, deleteUptimeCheck(&buf, name, opts...))
			assert.Loosely(t, buf.String(), should.Equal("Uptime check "+name+" was not found.\n"))
		})
	})
}

func TestTimeSeries(t *testing.T) {
	t.Parallel()

	ftt.Run("write then read back", t, func(t *ftt.Test) {
		_, fake, opts := startFakes(t)
		var buf bytes.Buffer
		assert.NoErr(t, writeTimeSeries(&buf, testProject, 3.14, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Wrote point 3.14 to custom.googleapis.com/my_metric\n"))
		assert.Loosely(t, len(fake.series), should.Equal(1))

		buf.Reset()
		assert.NoErr(t, listTimeSeries(&buf, testProject, opts...))
		assert.Loosely(t, buf.String(), should.Equal("custom.googleapis.com/my_metric: 3.14\n"))
	})
}
