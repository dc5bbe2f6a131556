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

package secretmanager

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"sort"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"cloud.google.com/go/iam/apiv1/iampb"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeIAMPolicy serves the google.iam.v1.IAMPolicy mixin.
type fakeIAMPolicy struct {
	iampb.UnimplementedIAMPolicyServer

	mu     sync.Mutex
	policy *iampb.Policy
}

func (f *fakeIAMPolicy) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest) (*iampb.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.policy == nil {
		return &iampb.Policy{Etag: []byte("etag-1")}, nil
	}
	return proto.Clone(f.policy).(*iampb.Policy), nil
}

func (f *fakeIAMPolicy) SetIamPolicy(ctx context.Context, req *iampb.SetIamPolicyRequest) (*iampb.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.policy = proto.Clone(req.GetPolicy()).(*iampb.Policy)
	return proto.Clone(f.policy).(*iampb.Policy), nil
}

// fakeSecretManager is an in-memory SecretManagerService.
type fakeSecretManager struct {
	secretmanagerpb.UnimplementedSecretManagerServiceServer

	iam *fakeIAMPolicy

	mu       sync.Mutex
	secrets  map[string]*secretmanagerpb.Secret
	versions map[string]*secretmanagerpb.SecretVersion
	payloads map[string][]byte
	latest   map[string]string
	nextVer  int
}

func newFakeSecretManager() *fakeSecretManager {
	return &fakeSecretManager{
		iam:      &fakeIAMPolicy{},
		secrets:  map[string]*secretmanagerpb.Secret{},
		versions: map[string]*secretmanagerpb.SecretVersion{},
		payloads: map[string][]byte{},
		latest:   map[string]string{},
		nextVer:  1,
	}
}

func (f *fakeSecretManager) CreateSecret(ctx context.Context, req *secretmanagerpb.CreateSecretRequest) (*secretmanagerpb.Secret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/secrets/" + req.GetSecretId()
	if _, ok := f.secrets[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "secret %s already exists", name)
	}
	s := proto.Clone(req.GetSecret()).(*secretmanagerpb.Secret)
	s.Name = name
	f.secrets[name] = s
	return proto.Clone(s).(*secretmanagerpb.Secret), nil
}

func (f *fakeSecretManager) GetSecret(ctx context.Context, req *secretmanagerpb.GetSecretRequest) (*secretmanagerpb.Secret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.secrets[req.GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "secret %s not found", req.GetName())
	}
	return proto.Clone(s).(*secretmanagerpb.Secret), nil
}

func (f *fakeSecretManager) UpdateSecret(ctx context.Context, req *secretmanagerpb.UpdateSecretRequest) (*secretmanagerpb.Secret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.secrets[req.GetSecret().GetName()]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "secret %s not found", req.GetSecret().GetName())
	}
	for _, path := range req.GetUpdateMask().GetPaths() {
		if path == "labels" {
			s.Labels = req.GetSecret().GetLabels()
		}
	}
	return proto.Clone(s).(*secretmanagerpb.Secret), nil
}

func (f *fakeSecretManager) DeleteSecret(ctx context.Context, req *secretmanagerpb.DeleteSecretRequest) (*emptypb.Empty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.secrets[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "secret %s not found", req.GetName())
	}
	delete(f.secrets, req.GetName())
	return &emptypb.Empty{}, nil
}

func (f *fakeSecretManager) ListSecrets(ctx context.Context, req *secretmanagerpb.ListSecretsRequest) (*secretmanagerpb.ListSecretsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.secrets {
		names = append(names, name)
	}
	sort.Strings(names)
	resp := &secretmanagerpb.ListSecretsResponse{TotalSize: int32(len(names))}
	for _, name := range names {
		resp.Secrets = append(resp.Secrets, proto.Clone(f.secrets[name]).(*secretmanagerpb.Secret))
	}
	return resp, nil
}

func (f *fakeSecretManager) AddSecretVersion(ctx context.Context, req *secretmanagerpb.AddSecretVersionRequest) (*secretmanagerpb.SecretVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.secrets[req.GetParent()]; !ok {
		return nil, status.Errorf(codes.NotFound, "secret %s not found", req.GetParent())
	}
	name := fmt.Sprintf("%s/versions/%d", req.GetParent(), f.nextVer)
	f.nextVer++
	v := &secretmanagerpb.SecretVersion{
		Name:  name,
		State: secretmanagerpb.SecretVersion_ENABLED,
	}
	f.versions[name] = v
	f.payloads[name] = append([]byte(nil), req.GetPayload().GetData()...)
	f.latest[req.GetParent()] = name
	return proto.Clone(v).(*secretmanagerpb.SecretVersion), nil
}

// resolve expands a ".../versions/latest" name. Callers hold f.mu.
func (f *fakeSecretManager) resolve(name string) string {
	const suffix = "/versions/latest"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		if latest, ok := f.latest[name[:len(name)-len(suffix)]]; ok {
			return latest
		}
	}
	return name
}

func (f *fakeSecretManager) AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := f.resolve(req.GetName())
	v, ok := f.versions[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "version %s not found", req.GetName())
	}
	if v.State != secretmanagerpb.SecretVersion_ENABLED {
		return nil, status.Errorf(codes.FailedPrecondition, "version %s is not enabled", req.GetName())
	}
	data := f.payloads[name]
	sum := int64(crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli)))
	return &secretmanagerpb.AccessSecretVersionResponse{
		Name: name,
		Payload: &secretmanagerpb.SecretPayload{
			Data:       append([]byte(nil), data...),
			DataCrc32C: &sum,
		},
	}, nil
}

func (f *fakeSecretManager) DestroySecretVersion(ctx context.Context, req *secretmanagerpb.DestroySecretVersionRequest) (*secretmanagerpb.SecretVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := f.resolve(req.GetName())
	v, ok := f.versions[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "version %s not found", req.GetName())
	}
	v.State = secretmanagerpb.SecretVersion_DESTROYED
	delete(f.payloads, name)
	return proto.Clone(v).(*secretmanagerpb.SecretVersion), nil
}

func (f *fakeSecretManager) GetIamPolicy(ctx context.Context, req *iampb.GetIamPolicyRequest) (*iampb.Policy, error) {
	return f.iam.GetIamPolicy(ctx, req)
}

func (f *fakeSecretManager) SetIamPolicy(ctx context.Context, req *iampb.SetIamPolicyRequest) (*iampb.Policy, error) {
	return f.iam.SetIamPolicy(ctx, req)
}

func startFake(t testing.TB) (*fakeSecretManager, []option.ClientOption) {
	fake := newFakeSecretManager()
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		secretmanagerpb.RegisterSecretManagerServiceServer(srv, fake)
		iampb.RegisterIAMPolicyServer(srv, fake.iam)
	})
	return fake, opts
}

func TestCreateSecret(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateSecret", t, func(t *ftt.Test) {
		_, opts := startFake(t)

		t.Run("creates and reports the secret", func(t *ftt.Test) {
			var buf bytes.Buffer
			assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Created secret: projects/test-project/secrets/my-secret\n"))
		})

		t.Run("surfaces AlreadyExists as a wrapped error", func(t *ftt.Test) {
			var buf bytes.Buffer
			assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))
			err := createSecret(&buf, "projects/test-project", "my-secret", opts...)
			assert.ErrIsLike(t, err, "failed to create secret")
			assert.Loosely(t, status.Code(err), should.Equal(codes.AlreadyExists))
		})
	})
}

func TestGetSecret(t *testing.T) {
	t.Parallel()

	ftt.Run("GetSecret", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))

		t.Run("reports an existing secret", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, getSecret(&buf, "projects/test-project/secrets/my-secret", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Found secret projects/test-project/secrets/my-secret\n"))
		})

		t.Run("wraps NotFound", func(t *ftt.Test) {
			err := getSecret(&buf, "projects/test-project/secrets/nope", opts...)
			assert.ErrIsLike(t, err, "failed to get secret")
			assert.Loosely(t, status.Code(err), should.Equal(codes.NotFound))
		})
	})
}

func TestUpdateSecret(t *testing.T) {
	t.Parallel()

	ftt.Run("updates the labels in place", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))

		buf.Reset()
		assert.NoErr(t, updateSecret(&buf, "projects/test-project/secrets/my-secret", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Updated secret: projects/test-project/secrets/my-secret\n"))
		assert.That(t, fake.secrets["projects/test-project/secrets/my-secret"].GetLabels(),
			should.Match(map[string]string{"secretmanager": "rocks"}))
	})
}

func TestDeleteSecret(t *testing.T) {
	t.Parallel()

	ftt.Run("deletes and reports the secret", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))

		buf.Reset()
		assert.NoErr(t, deleteSecret(&buf, "projects/test-project/secrets/my-secret", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Deleted secret projects/test-project/secrets/my-secret\n"))
		assert.Loosely(t, fake.secrets, should.BeEmpty)
	})
}

func TestListSecrets(t *testing.T) {
	t.Parallel()

	ftt.Run("prints one line per secret, in order", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		for _, id := range []string{"alpha", "bravo", "charlie"} {
			assert.NoErr(t, createSecret(&buf, "projects/test-project", id, opts...))
		}

		buf.Reset()
		assert.NoErr(t, listSecrets(&buf, "projects/test-project", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Found secret projects/test-project/secrets/alpha\n"+
				"Found secret projects/test-project/secrets/bravo\n"+
				"Found secret projects/test-project/secrets/charlie\n"))
	})
}

func TestSecretVersions(t *testing.T) {
	t.Parallel()

	ftt.Run("versions", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))
		secret := "projects/test-project/secrets/my-secret"

		t.Run("add then access round-trips the payload", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, addSecretVersion(&buf, secret, []byte("my super secret data"), opts...))
			assert.Loosely(t, buf.String(), should.Equal("Added secret version: "+secret+"/versions/1\n"))

			buf.Reset()
			assert.NoErr(t, accessSecretVersion(&buf, secret+"/versions/latest", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Plaintext: my super secret data\n"))
		})

		t.Run("accessing a missing version explains itself", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, accessSecretVersion(&buf, secret+"/versions/99", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Version "+secret+"/versions/99 was not found.\n"))
		})

		t.Run("accessing a destroyed version explains itself", func(t *ftt.Test) {
			assert.NoErr(t, addSecretVersion(&buf, secret, []byte("doomed"), opts...))

			buf.Reset()
			assert.NoErr(t, destroySecretVersion(&buf, secret+"/versions/1", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Destroyed secret version: "+secret+"/versions/1\n"))

			buf.Reset()
			assert.NoErr(t, accessSecretVersion(&buf, secret+"/versions/1", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Version "+secret+"/versions/1 is disabled or destroyed and cannot be accessed.\n"))
		})
	})
}

func TestIAMGrantAccess(t *testing.T) {
	t.Parallel()

	ftt.Run("adds the member to the accessor role", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createSecret(&buf, "projects/test-project", "my-secret", opts...))

		buf.Reset()
		assert.NoErr(t, iamGrantAccess(&buf, "projects/test-project/secrets/my-secret", "user:foo@example.com", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Updated IAM policy for projects/test-project/secrets/my-secret\n"))

		fake.iam.mu.Lock()
		defer fake.iam.mu.Unlock()
		bindings := fake.iam.policy.GetBindings()
		assert.Loosely(t, bindings, should.HaveLength(1))
		assert.Loosely(t, bindings[0].GetRole(), should.Equal("roles/secretmanager.secretAccessor"))
		assert.That(t, bindings[0].GetMembers(), should.Match([]string{"user:foo@example.com"}))
	})
}
