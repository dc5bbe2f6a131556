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

package scheduler

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"cloud.google.com/go/scheduler/apiv1/schedulerpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeScheduler is an in-memory CloudScheduler service.
type fakeScheduler struct {
	schedulerpb.UnimplementedCloudSchedulerServer

	mu   sync.Mutex
	jobs map[string]*schedulerpb.Job
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: map[string]*schedulerpb.Job{}}
}

func (f *fakeScheduler) CreateJob(ctx context.Context, req *schedulerpb.CreateJobRequest) (*schedulerpb.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetJob().GetName()
	if _, ok := f.jobs[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "job %s already exists", name)
	}
	job := proto.Clone(req.GetJob()).(*schedulerpb.Job)
	job.State = schedulerpb.Job_ENABLED
	f.jobs[name] = job
	return proto.Clone(job).(*schedulerpb.Job), nil
}

func (f *fakeScheduler) ListJobs(ctx context.Context, req *schedulerpb.ListJobsRequest) (*schedulerpb.ListJobsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &schedulerpb.ListJobsResponse{}
	for _, name := range names {
		resp.Jobs = append(resp.Jobs, proto.Clone(f.jobs[name]).(*schedulerpb.Job))
	}
	return resp, nil
}

func (f *fakeScheduler) PauseJob(ctx context.Context, req *schedulerpb.PauseJobRequest) (*schedulerpb.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "job %s not found", req.GetName())
	}
	job.State = schedulerpb.Job_PAUSED
	return proto.Clone(job).(*schedulerpb.Job), nil
}

func (f *fakeScheduler) DeleteJob(ctx context.Context, req *schedulerpb.DeleteJobRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "job %s not found", req.GetName())
	}
	delete(f.jobs, req.GetName())
	return &emptypb.Empty{}, nil
}

func startFake(t testing.TB) (*fakeScheduler, []option.ClientOption) {
	fake := newFakeScheduler()
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		schedulerpb.RegisterCloudSchedulerServer(srv, fake)
	})
	return fake, opts
}

const testParent = "projects/test-project/locations/us-central1"

func TestCreateJob(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateJob", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createJob(&buf, testParent, "my-job", "0 */6 * * *", "https://example.com/ping", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Created job "+testParent+"/jobs/my-job with schedule \"0 */6 * * *\"\n"))
		job := fake.jobs[testParent+"/jobs/my-job"]
		assert.Loosely(t, job.GetHttpTarget().GetUri(), should.Equal("https://example.com/ping"))

		t.Run("surfaces AlreadyExists as a wrapped error", func(t *ftt.Test) {
			err := createJob(&buf, testParent, "my-job", "* * * * *", "https://example.com", opts...)
			assert.ErrIsLike(t, err, "failed to create job")
			assert.Loosely(t, status.Code(err), should.Equal(codes.AlreadyExists))
		})
	})
}

func TestPauseJob(t *testing.T) {
	t.Parallel()

	ftt.Run("PauseJob", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createJob(&buf, testParent, "my-job", "* * * * *", "https://example.com", opts...))

		t.Run("pauses an existing job", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, pauseJob(&buf, testParent+"/jobs/my-job", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Paused job "+testParent+"/jobs/my-job (state: PAUSED)\n"))
			assert.Loosely(t, fake.jobs[testParent+"/jobs/my-job"].GetState(), should.Equal(schedulerpb.Job_PAUSED))
		})

		t.Run("prints a hint for a missing job", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, pauseJob(&buf, testParent+"/jobs/nope", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Job "+testParent+"/jobs/nope was not found.\n"))
		})
	})
}

func TestListAndDeleteJobs(t *testing.T) {
	t.Parallel()

	ftt.Run("list reflects creates and deletes", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		for _, id := range []string{"alpha", "bravo"} {
			assert.NoErr(t, createJob(&buf, testParent, id, "* * * * *", "https://example.com", opts...))
		}

		buf.Reset()
		assert.NoErr(t, listJobs(&buf, testParent, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Found job "+testParent+"/jobs/alpha with schedule \"* * * * *\"\n"+
				"Found job "+testParent+"/jobs/bravo with schedule \"* * * * *\"\n"))

		buf.Reset()
		assert.NoErr(t, deleteJob(&buf, testParent+"/jobs/alpha", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted job "+testParent+"/jobs/alpha\n"))
		assert.Loosely(t, len(fake.jobs), should.Equal(1))
	})
}
