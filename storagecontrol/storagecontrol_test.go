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

package storagecontrol

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

	"cloud.google.com/go/storage/control/apiv2/controlpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeStorageControl is an in-memory StorageControl service for one
// hierarchical namespace bucket.
type fakeStorageControl struct {
	controlpb.UnimplementedStorageControlServer

	mu      sync.Mutex
	folders map[string]*controlpb.Folder
	managed map[string]*controlpb.ManagedFolder
}

func (f *fakeStorageControl) CreateFolder(ctx context.Context, req *controlpb.CreateFolderRequest) (*controlpb.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/folders/" + req.GetFolderId()
	if _, ok := f.folders[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "folder %s already exists", name)
	}
	folder := &controlpb.Folder{Name: name}
	f.folders[name] = folder
	return proto.Clone(folder).(*controlpb.Folder), nil
}

func (f *fakeStorageControl) GetFolder(ctx context.Context, req *controlpb.GetFolderRequest) (*controlpb.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	folder, ok := f.folders[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "folder %s not found", req.GetName())
	}
	return proto.Clone(folder).(*controlpb.Folder), nil
}

func (f *fakeStorageControl) ListFolders(ctx context.Context, req *controlpb.ListFoldersRequest) (*controlpb.ListFoldersResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.folders {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &controlpb.ListFoldersResponse{}
	for _, name := range names {
		resp.Folders = append(resp.Folders, proto.Clone(f.folders[name]).(*controlpb.Folder))
	}
	return resp, nil
}

func (f *fakeStorageControl) DeleteFolder(ctx context.Context, req *controlpb.DeleteFolderRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.folders[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "folder %s not found", req.GetName())
	}
	delete(f.folders, req.GetName())
	return &emptypb.Empty{}, nil
}

func (f *fakeStorageControl) GetStorageLayout(ctx context.Context, req *controlpb.GetStorageLayoutRequest) (*controlpb.StorageLayout, error) {
	return &controlpb.StorageLayout{
		Name:     req.GetName(),
		Location: "US-CENTRAL1",
		HierarchicalNamespace: &controlpb.StorageLayout_HierarchicalNamespace{
			Enabled: true,
		},
	}, nil
}

func (f *fakeStorageControl) CreateManagedFolder(ctx context.Context, req *controlpb.CreateManagedFolderRequest) (*controlpb.ManagedFolder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/managedFolders/" + req.GetManagedFolderId()
	if _, ok := f.managed[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "managed folder %s already exists", name)
	}
	folder := &controlpb.ManagedFolder{Name: name}
	f.managed[name] = folder
	return proto.Clone(folder).(*controlpb.ManagedFolder), nil
}

func startFake(t testing.TB) (*fakeStorageControl, []option.ClientOption) {
	fake := &fakeStorageControl{
		folders: map[string]*controlpb.Folder{},
		managed: map[string]*controlpb.ManagedFolder{},
	}
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		controlpb.RegisterStorageControlServer(srv, fake)
	})
	return fake, opts
}

const testBucket = "projects/_/buckets/test-bucket"

func TestFolderLifecycle(t *testing.T) {
	t.Parallel()

	ftt.Run("create, get, list, delete", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		name := testBucket + "/folders/my-folder"
		assert.NoErr(t, createFolder(&buf, testBucket, "my-folder", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created folder: "+name+"\n"))

		buf.Reset()
		assert.NoErr(t, createFolder(&buf, testBucket, "my-folder", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Folder my-folder already exists in "+testBucket+".\n"))

		buf.Reset()
		assert.NoErr(t, getFolder(&buf, name, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Found folder: "+name+"\n"))

		buf.Reset()
		assert.NoErr(t, listFolders(&buf, testBucket, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Folder: "+name+"\n"))

		buf.Reset()
		assert.NoErr(t, deleteFolder(&buf, name, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted folder "+name+"\n"))
		assert.Loosely(t, fake.folders, should.BeEmpty)

		buf.Reset()
		assert.NoErr(t, deleteFolder(&buf, name, opts...))
		assert.Loosely(t, buf.String(), should.Equal("Folder "+name+" was not found.\n"))
	})
}

func TestGetStorageLayout(t *testing.T) {
	t.Parallel()

	ftt.Run("prints location and HNS state", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, getStorageLayout(&buf, testBucket, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Bucket location: US-CENTRAL1, hierarchical namespace enabled: true\n"))
	})
}

func TestCreateManagedFolder(t *testing.T) {
	t.Parallel()

	ftt.Run("creates the managed folder", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createManagedFolder(&buf, testBucket, "my-managed", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Created managed folder: "+testBucket+"/managedFolders/my-managed\n"))
		assert.Loosely(t, len(fake.managed), should.Equal(1))
	})
}
