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

package eventarc

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

	"cloud.google.com/go/eventarc/apiv1/eventarcpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeEventarc is an in-memory Eventarc service. Long-running operations
// complete immediately.
type fakeEventarc struct {
	eventarcpb.UnimplementedEventarcServer

	mu       sync.Mutex
	triggers map[string]*eventarcpb.Trigger
}

func newFakeEventarc() *fakeEventarc {
	return &fakeEventarc{triggers: map[string]*eventarcpb.Trigger{}}
}

func (f *fakeEventarc) CreateTrigger(ctx context.Context, req *eventarcpb.CreateTriggerRequest) (*longrunningpb.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/triggers/" + req.GetTriggerId()
	if _, ok := f.triggers[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "trigger %s already exists", name)
	}
	trigger := proto.Clone(req.GetTrigger()).(*eventarcpb.Trigger)
	trigger.Name = name
	f.triggers[name] = trigger
	return sampletest.DoneOperation("operations/create-"+req.GetTriggerId(), trigger)
}

func (f *fakeEventarc) GetTrigger(ctx context.Context, req *eventarcpb.GetTriggerRequest) (*eventarcpb.Trigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trigger, ok := f.triggers[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "trigger %s not found", req.GetName())
	}
	return proto.Clone(trigger).(*eventarcpb.Trigger), nil
}

func (f *fakeEventarc) ListTriggers(ctx context.Context, req *eventarcpb.ListTriggersRequest) (*eventarcpb.ListTriggersResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.triggers {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &eventarcpb.ListTriggersResponse{}
	for _, name := range names {
		resp.Triggers = append(resp.Triggers, proto.Clone(f.triggers[name]).(*eventarcpb.Trigger))
	}
	return resp, nil
}

func (f *fakeEventarc) DeleteTrigger(ctx context.Context, req *eventarcpb.DeleteTriggerRequest) (*longrunningpb.Operation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	trigger, ok := f.triggers[req.GetName()]
	if !ok {
		if req.GetAllowMissing() {
			return sampletest.DoneOperation("operations/delete-missing", &eventarcpb.Trigger{Name: req.GetName()})
		}
		return nil, status.Errorf(codes.NotFound, "trigger %s not found", req.GetName())
	}
	delete(f.triggers, req.GetName())
	return sampletest.DoneOperation("operations/delete", trigger)
}

func startFake(t testing.TB) (*fakeEventarc, []option.ClientOption) {
	fake := newFakeEventarc()
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		eventarcpb.RegisterEventarcServer(srv, fake)
	})
	return fake, opts
}

const testParent = "projects/test-project/locations/us-central1"

func TestCreateTrigger(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateTrigger", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTrigger(&buf, testParent, "my-trigger", "my-service", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created trigger: "+testParent+"/triggers/my-trigger\n"))
		trigger := fake.triggers[testParent+"/triggers/my-trigger"]
		assert.Loosely(t, trigger.GetDestination().GetCloudRun().GetService(), should.Equal("my-service"))

		t.Run("surfaces AlreadyExists as a wrapped error", func(t *ftt.Test) {
			err := createTrigger(&buf, testParent, "my-trigger", "my-service", opts...)
			assert.ErrIsLike(t, err, "failed to create trigger")
			assert.Loosely(t, status.Code(err), should.Equal(codes.AlreadyExists))
		})
	})
}

func TestGetTrigger(t *testing.T) {
	t.Parallel()

	ftt.Run("GetTrigger", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createTrigger(&buf, testParent, "my-trigger", "my-service", opts...))

		t.Run("reports an existing trigger", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, getTrigger(&buf, testParent+"/triggers/my-trigger", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Found trigger "+testParent+"/triggers/my-trigger routing to my-service\n"))
		})

		t.Run("prints a hint for a missing trigger", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, getTrigger(&buf, testParent+"/triggers/nope", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Trigger "+testParent+"/triggers/nope was not found.\n"))
		})
	})
}

func TestListAndDeleteTriggers(t *testing.T) {
	t.Parallel()

	ftt.Run("list reflects creates and deletes", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		for _, id := range []string{"alpha", "bravo"} {
			assert.NoErr(t, createTrigger(&buf, testParent, id, "my-service", opts...))
		}

		buf.Reset()
		assert.NoErr(t, listTriggers(&buf, testParent, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Found trigger: "+testParent+"/triggers/alpha\n"+
				"Found trigger: "+testParent+"/triggers/bravo\n"))

		buf.Reset()
		assert.NoErr(t, deleteTrigger(&buf, testParent+"/triggers/alpha", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted trigger "+testParent+"/triggers/alpha\n"))
		assert.Loosely(t, len(fake.triggers), should.Equal(1))

		t.Run("deleting a missing trigger succeeds with AllowMissing", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, deleteTrigger(&buf, testParent+"/triggers/gone", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Deleted trigger "+testParent+"/triggers/gone\n"))
		})
	})
}
