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

// Package sampletest holds shared plumbing for sample tests.
//
// Most samples take a trailing `opts ...option.ClientOption` and forward it
// to the client constructor. Tests use FakeConnOptions to point such a client
// at an in-process gRPC server so they run hermetically, with no credentials
// and no network.
package sampletest

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
)

const bufSize = 1024 * 1024

// FakeConnOptions starts an in-process gRPC server, lets the caller register
// fake service implementations on it, and returns client options that make a
// generated Cloud client talk to that server. The server and connection are
// torn down when the test finishes.
func FakeConnOptions(tb testing.TB, register func(srv *grpc.Server)) []option.ClientOption {
	tb.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	register(srv)
	go srv.Serve(lis)
	tb.Cleanup(srv.Stop)

	// Each client dials its own connection: clients built with WithGRPCConn
	// close the provided conn on Close, which would break later samples that
	// reuse these options.
	return []option.ClientOption{
		option.WithEndpoint("passthrough:///bufconn"),
		option.WithGRPCDialOption(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		option.WithoutAuthentication(),
	}
}

// DoneOperation wraps resp in an already-completed long-running operation,
// the way a fake server reports an RPC that finishes immediately. The
// signature matches gRPC handler returns so fakes can use it as a one-liner.
func DoneOperation(name string, resp proto.Message) (*longrunningpb.Operation, error) {
	a, err := anypb.New(resp)
	if err != nil {
		return nil, err
	}
	return &longrunningpb.Operation{
		Name: name,
		Done: true,
		Result: &longrunningpb.Operation_Response{
			Response: a,
		},
	}, nil
}

// SystemTestProject returns the project to use for tests that must talk to
// live services, skipping the test when none is configured.
func SystemTestProject(tb testing.TB) string {
	tb.Helper()
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GOOGLE_PROJECT", "PROJECT_ID"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	tb.Skip("set GOOGLE_CLOUD_PROJECT to run this test against live services")
	return ""
}

// Retry runs f until it succeeds, up to maxAttempts, backing off between
// attempts. Live services are eventually consistent; fakes never need this.
func Retry(tb testing.TB, maxAttempts int, f func() error) {
	tb.Helper()
	bo := gax.Backoff{
		Initial:    100 * time.Millisecond,
		Max:        2 * time.Second,
		Multiplier: 2,
	}
	var err error
	for attempt := 1; ; attempt++ {
		if err = f(); err == nil {
			return
		}
		if attempt == maxAttempts {
			break
		}
		time.Sleep(bo.Pause())
	}
	tb.Fatalf("still failing after %d attempts: %v", maxAttempts, err)
}
