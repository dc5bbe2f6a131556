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

package kms

import (
	"bytes"
	"context"
	"hash/crc32"
	"sort"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"cloud.google.com/go/kms/apiv1/kmspb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

// fakeKMS is an in-memory KeyManagementService. Encryption is a reversible
// toy transform so Decrypt can undo Encrypt without real key material.
type fakeKMS struct {
	kmspb.UnimplementedKeyManagementServiceServer

	mu    sync.Mutex
	rings map[string]*kmspb.KeyRing
	keys  map[string]*kmspb.CryptoKey
}

func newFakeKMS() *fakeKMS {
	return &fakeKMS{
		rings: map[string]*kmspb.KeyRing{},
		keys:  map[string]*kmspb.CryptoKey{},
	}
}

func crc32c(data []byte) int64 {
	return int64(crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli)))
}

func (f *fakeKMS) CreateKeyRing(ctx context.Context, req *kmspb.CreateKeyRingRequest) (*kmspb.KeyRing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/keyRings/" + req.GetKeyRingId()
	if _, ok := f.rings[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "key ring %s already exists", name)
	}
	r := &kmspb.KeyRing{Name: name}
	f.rings[name] = r
	return proto.Clone(r).(*kmspb.KeyRing), nil
}

func (f *fakeKMS) CreateCryptoKey(ctx context.Context, req *kmspb.CreateCryptoKeyRequest) (*kmspb.CryptoKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rings[req.GetParent()]; !ok {
		return nil, status.Errorf(codes.NotFound, "key ring %s not found", req.GetParent())
	}
	name := req.GetParent() + "/cryptoKeys/" + req.GetCryptoKeyId()
	k := proto.Clone(req.GetCryptoKey()).(*kmspb.CryptoKey)
	k.Name = name
	f.keys[name] = k
	return proto.Clone(k).(*kmspb.CryptoKey), nil
}

func (f *fakeKMS) Encrypt(ctx context.Context, req *kmspb.EncryptRequest) (*kmspb.EncryptResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "key %s not found", req.GetName())
	}
	ciphertext := append([]byte("enc:"), req.GetPlaintext()...)
	return &kmspb.EncryptResponse{
		Name:                    req.GetName(),
		Ciphertext:              ciphertext,
		CiphertextCrc32C:        wrapperspb.Int64(crc32c(ciphertext)),
		VerifiedPlaintextCrc32C: true,
	}, nil
}

func (f *fakeKMS) Decrypt(ctx context.Context, req *kmspb.DecryptRequest) (*kmspb.DecryptResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[req.GetName()]; !ok {
		return nil, status.Errorf(codes.NotFound, "key %s not found", req.GetName())
	}
	ct := req.GetCiphertext()
	if len(ct) < 4 || string(ct[:4]) != "enc:" {
		return nil, status.Errorf(codes.InvalidArgument, "malformed ciphertext")
	}
	plaintext := ct[4:]
	return &kmspb.DecryptResponse{
		Plaintext:       plaintext,
		PlaintextCrc32C: wrapperspb.Int64(crc32c(plaintext)),
	}, nil
}

func (f *fakeKMS) ListCryptoKeys(ctx context.Context, req *kmspb.ListCryptoKeysRequest) (*kmspb.ListCryptoKeysResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	prefix := req.GetParent() + "/cryptoKeys/"
	for name := range f.keys {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	resp := &kmspb.ListCryptoKeysResponse{TotalSize: int32(len(names))}
	for _, name := range names {
		resp.CryptoKeys = append(resp.CryptoKeys, proto.Clone(f.keys[name]).(*kmspb.CryptoKey))
	}
	return resp, nil
}

func startFake(t testing.TB) []option.ClientOption {
	fake := newFakeKMS()
	return sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		kmspb.RegisterKeyManagementServiceServer(srv, fake)
	})
}

const testRing = "projects/test-project/locations/us-east1/keyRings/test-ring"

func TestCreateKeyRing(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateKeyRing", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createKeyRing(&buf, "projects/test-project/locations/us-east1", "test-ring", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created key ring: "+testRing+"\n"))

		t.Run("reports an existing ring instead of failing", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, createKeyRing(&buf, "projects/test-project/locations/us-east1", "test-ring", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Key ring test-ring already exists.\n"))
		})
	})
}

func TestCreateKeySymmetric(t *testing.T) {
	t.Parallel()

	ftt.Run("creates a symmetric key on the ring", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createKeyRing(&buf, "projects/test-project/locations/us-east1", "test-ring", opts...))

		buf.Reset()
		assert.NoErr(t, createKeySymmetricEncryptDecrypt(&buf, testRing, "my-key", opts...))
		assert.Loosely(t, buf.String(), should.Equal("Created key: "+testRing+"/cryptoKeys/my-key\n"))
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	ftt.Run("with a key in place", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createKeyRing(&buf, "projects/test-project/locations/us-east1", "test-ring", opts...))
		assert.NoErr(t, createKeySymmetricEncryptDecrypt(&buf, testRing, "my-key", opts...))
		keyName := testRing + "/cryptoKeys/my-key"

		t.Run("encrypt then decrypt recovers the message", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, encryptSymmetric(&buf, keyName, "Sample message", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Encrypted ciphertext: enc:Sample message\n"))

			buf.Reset()
			assert.NoErr(t, decryptSymmetric(&buf, keyName, []byte("enc:Sample message"), opts...))
			assert.Loosely(t, buf.String(), should.Equal("Decrypted plaintext: Sample message\n"))
		})

		t.Run("encrypt against a missing key wraps NotFound", func(t *ftt.Test) {
			err := encryptSymmetric(&buf, testRing+"/cryptoKeys/nope", "m", opts...)
			assert.ErrIsLike(t, err, "failed to encrypt")
			assert.Loosely(t, status.Code(err), should.Equal(codes.NotFound))
		})
	})
}

func TestListCryptoKeys(t *testing.T) {
	t.Parallel()

	ftt.Run("prints one line per key, in order", t, func(t *ftt.Test) {
		opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createKeyRing(&buf, "projects/test-project/locations/us-east1", "test-ring", opts...))
		for _, id := range []string{"alpha", "bravo"} {
			assert.NoErr(t, createKeySymmetricEncryptDecrypt(&buf, testRing, id, opts...))
		}

		buf.Reset()
		assert.NoErr(t, listCryptoKeys(&buf, testRing, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Found key: "+testRing+"/cryptoKeys/alpha\n"+
				"Found key: "+testRing+"/cryptoKeys/bravo\n"))
	})
}
