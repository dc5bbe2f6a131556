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

package parametermanager

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

	"cloud.google.com/go/parametermanager/apiv1/parametermanagerpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeParameterManager is an in-memory ParameterManager service.
type fakeParameterManager struct {
	parametermanagerpb.UnimplementedParameterManagerServer

	mu       sync.Mutex
	params   map[string]*parametermanagerpb.Parameter
	versions map[string]*parametermanagerpb.ParameterVersion
}

func newFakeParameterManager() *fakeParameterManager {
	return &fakeParameterManager{
		params:   map[string]*parametermanagerpb.Parameter{},
		versions: map[string]*parametermanagerpb.ParameterVersion{},
	}
}

func (f *fakeParameterManager) CreateParameter(ctx context.Context, req *parametermanagerpb.CreateParameterRequest) (*parametermanagerpb.Parameter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/parameters/" + req.GetParameterId()
	if _, ok := f.params[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "parameter %s already exists", name)
	}
	p := proto.Clone(req.GetParameter()).(*parametermanagerpb.Parameter)
	p.Name = name
	f.params[name] = p
	return proto.Clone(p).(*parametermanagerpb.Parameter), nil
}

func (f *fakeParameterManager) CreateParameterVersion(ctx context.Context, req *parametermanagerpb.CreateParameterVersionRequest) (*parametermanagerpb.ParameterVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.params[req.GetParent()]; !ok {
		return nil, status.Errorf(codes.NotFound, "parameter %s not found", req.GetParent())
	}
	name := req.GetParent() + "/versions/" + req.GetParameterVersionId()
	v := proto.Clone(req.GetParameterVersion()).(*parametermanagerpb.ParameterVersion)
	v.Name = name
	f.versions[name] = v
	return proto.Clone(v).(*parametermanagerpb.ParameterVersion), nil
}

func (f *fakeParameterManager) GetParameter(ctx context.Context, req *parametermanagerpb.GetParameterRequest) (*parametermanagerpb.Parameter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.params[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "parameter %s not found", req.GetName())
	}
	return proto.Clone(p).(*parametermanagerpb.Parameter), nil
}

func (f *fakeParameterManager) RenderParameterVersion(ctx context.Context, req *parametermanagerpb.RenderParameterVersionRequest) (*parametermanagerpb.RenderParameterVersionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.versions[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "version %s not found", req.GetName())
	}
	return &parametermanagerpb.RenderParameterVersionResponse{
		ParameterVersion: req.GetName(),
		RenderedPayload:  append([]byte(nil), v.GetPayload().GetData()...),
	}, nil
}

func (f *fakeParameterManager) ListParameters(ctx context.Context, req *parametermanagerpb.ListParametersRequest) (*parametermanagerpb.ListParametersResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.params {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &parametermanagerpb.ListParametersResponse{}
	for _, name := range names {
		resp.Parameters = append(resp.Parameters, proto.Clone(f.params[name]).(*parametermanagerpb.Parameter))
	}
	return resp, nil
}

func (f *fakeParameterManager) DeleteParameter(ctx context.Context, req *parametermanagerpb.DeleteParameterRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.params[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "parameter %s not found", req.GetName())
	}
	delete(f.params, req.GetName())
	return &emptypb.Empty{}, nil
}

func startFake(t testing.TB) (*fakeParameterManager, []option.ClientOption) {
	fake := newFakeParameterManager()
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		parametermanagerpb.RegisterParameterManagerServer(srv, fake)
	})
	return fake, opts
}

const testParent = "projects/test-project/locations/global"

func TestCreateParam(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateParam", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createParam(&buf, testParent, "my-parameter", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Created parameter "+testParent+"/parameters/my-parameter with format JSON\n"))

		t.Run("surfaces AlreadyExists as a wrapped error", func(t *ftt.Test) {
			err := createParam(&buf, testParent, "my-parameter", opts...)
			assert.ErrIsLike(t, err, "failed to create parameter")
			assert.Loosely(t, status.Code(err), should.Equal(codes.AlreadyExists))
		})
	})
}

func TestCreateAndRenderParamVersion(t *testing.T) {
	t.Parallel()

	ftt.Run("with a parameter in place", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createParam(&buf, testParent, "my-parameter", opts...))
		paramName := testParent + "/parameters/my-parameter"

		buf.Reset()
		assert.NoErr(t, createParamVersion(&buf, paramName, "v1", `{"username": "test-user"}`, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created parameter version: "+paramName+"/versions/v1\n"))

		t.Run("render returns the stored payload", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, renderParamVersion(&buf, paramName+"/versions/v1", opts...))
			assert.Loosely(t, buf.String(), should.Equal(`Rendered payload: {"username": "test-user"}`+"\n"))
		})

		t.Run("version under a missing parameter wraps NotFound", func(t *ftt.Test) {
			err := createParamVersion(&buf, testParent+"/parameters/nope", "v1", "{}", opts...)
			assert.ErrIsLike(t, err, "failed to create parameter version")
			assert.Loosely(t, status.Code(err), should.Equal(codes.NotFound))
		})
	})
}

func TestGetParam(t *testing.T) {
	t.Parallel()

	ftt.Run("GetParam", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createParam(&buf, testParent, "my-parameter", opts...))

		t.Run("reports an existing parameter", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, getParam(&buf, testParent+"/parameters/my-parameter", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Found parameter "+testParent+"/parameters/my-parameter with format JSON\n"))
		})

		t.Run("prints a hint for a missing parameter", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, getParam(&buf, testParent+"/parameters/nope", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Parameter "+testParent+"/parameters/nope was not found.\n"))
		})
	})
}

func TestListAndDeleteParams(t *testing.T) {
	t.Parallel()

	ftt.Run("list reflects creates and deletes", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		for _, id := range []string{"alpha", "bravo"} {
			assert.NoErr(t, createParam(&buf, testParent, id, opts...))
		}

		buf.Reset()
		assert.NoErr(t, listParams(&buf, testParent, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Found parameter "+testParent+"/parameters/alpha with format JSON\n"+
				"Found parameter "+testParent+"/parameters/bravo with format JSON\n"))

		buf.Reset()
		assert.NoErr(t, deleteParam(&buf, testParent+"/parameters/alpha", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted parameter "+testParent+"/parameters/alpha\n"))
		assert.Loosely(t, len(fake.params), should.Equal(1))
	})
}
