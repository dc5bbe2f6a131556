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

package dlp

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"cloud.google.com/go/dlp/apiv2/dlppb"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/GoogleCloudPlatform/go-docs-samples/internal/sampletest"
)

var emailRx = regexp.MustCompile(`[a-z0-9._]+@[a-z0-9.]+`)

// fakeDLP detects email addresses with a toy regex, which is all the
// samples need to exercise their print paths.
type fakeDLP struct {
	dlppb.UnimplementedDlpServiceServer

	mu        sync.Mutex
	templates map[string]*dlppb.InspectTemplate
}

func newFakeDLP() *fakeDLP {
	return &fakeDLP{templates: map[string]*dlppb.InspectTemplate{}}
}

func (f *fakeDLP) InspectContent(ctx context.Context, req *dlppb.InspectContentRequest) (*dlppb.InspectContentResponse, error) {
	result := &dlppb.InspectResult{}
	for _, match := range emailRx.FindAllString(req.GetItem().GetValue(), -1) {
		finding := &dlppb.Finding{
			InfoType:   &dlppb.InfoType{Name: "EMAIL_ADDRESS"},
			Likelihood: dlppb.Likelihood_VERY_LIKELY,
		}
		if req.GetInspectConfig().GetIncludeQuote() {
			finding.Quote = match
		}
		result.Findings = append(result.Findings, finding)
	}
	return &dlppb.InspectContentResponse{Result: result}, nil
}

func (f *fakeDLP) DeidentifyContent(ctx context.Context, req *dlppb.DeidentifyContentRequest) (*dlppb.DeidentifyContentResponse, error) {
	mask := "*"
	for _, tr := range req.GetDeidentifyConfig().GetInfoTypeTransformations().GetTransformations() {
		if c := tr.GetPrimitiveTransformation().GetCharacterMaskConfig(); c != nil && c.GetMaskingCharacter() != "" {
			mask = c.GetMaskingCharacter()
		}
	}
	masked := emailRx.ReplaceAllStringFunc(req.GetItem().GetValue(), func(m string) string {
		return strings.Repeat(mask, len(m))
	})
	return &dlppb.DeidentifyContentResponse{
		Item: &dlppb.ContentItem{DataItem: &dlppb.ContentItem_Value{Value: masked}},
	}, nil
}

func (f *fakeDLP) ListInfoTypes(ctx context.Context, req *dlppb.ListInfoTypesRequest) (*dlppb.ListInfoTypesResponse, error) {
	return &dlppb.ListInfoTypesResponse{
		InfoTypes: []*dlppb.InfoTypeDescription{
			{Name: "EMAIL_ADDRESS", DisplayName: "Email address"},
			{Name: "PHONE_NUMBER", DisplayName: "Phone number"},
		},
	}, nil
}

func (f *fakeDLP) CreateInspectTemplate(ctx context.Context, req *dlppb.CreateInspectTemplateRequest) (*dlppb.InspectTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.GetParent() + "/inspectTemplates/" + req.GetTemplateId()
	if _, ok := f.templates[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "template %s already exists", name)
	}
	tmpl := proto.Clone(req.GetInspectTemplate()).(*dlppb.InspectTemplate)
	tmpl.Name = name
	f.templates[name] = tmpl
	return proto.Clone(tmpl).(*dlppb.InspectTemplate), nil
}

func startFake(t testing.TB) (*fakeDLP, []option.ClientOption) {
	fake := newFakeDLP()
	opts := sampletest.FakeConnOptions(t, func(srv *grpc.Server) {
		dlppb.RegisterDlpServiceServer(srv, fake)
	})
	return fake, opts
}

const testParent = "projects/test-project/locations/global"

func TestInspectString(t *testing.T) {
	t.Parallel()

	ftt.Run("InspectString", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer

		t.Run("prints findings with quotes", func(t *ftt.Test) {
			assert.NoErr(t, inspectString(&buf, testParent, "my email is test@example.com", opts...))
			assert.Loosely(t, buf.String(), should.Equal(
				"Found EMAIL_ADDRESS \"test@example.com\" (likelihood: VERY_LIKELY)\n"))
		})

		t.Run("prints a marker when nothing is found", func(t *ftt.Test) {
			assert.NoErr(t, inspectString(&buf, testParent, "nothing sensitive here", opts...))
			assert.Loosely(t, buf.String(), should.Equal("No findings.\n"))
		})
	})
}

func TestDeidentifyMasking(t *testing.T) {
	t.Parallel()

	ftt.Run("masks each detected value", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, deidentifyMasking(&buf, testParent, "mail test@example.com now", opts...))
		assert.Loosely(t, buf.String(), should.Equal("De-identified text: mail **************** now\n"))
	})
}

func TestListInfoTypes(t *testing.T) {
	t.Parallel()

	ftt.Run("prints one line per info type", t, func(t *ftt.Test) {
		_, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, listInfoTypes(&buf, opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"EMAIL_ADDRESS: Email address\nPHONE_NUMBER: Phone number\n"))
	})
}

func TestCreateInspectTemplate(t *testing.T) {
	t.Parallel()

	ftt.Run("CreateInspectTemplate", t, func(t *ftt.Test) {
		fake, opts := startFake(t)
		var buf bytes.Buffer
		assert.NoErr(t, createInspectTemplate(&buf, testParent, "my-template", opts...))
		assert.Loosely(t, buf.String(), should.Equal(
			"Created inspect template: "+testParent+"/inspectTemplates/my-template\n"))
		assert.Loosely(t, len(fake.templates), should.Equal(1))

		t.Run("reports an existing template instead of failing", func(t *ftt.Test) {
			buf.Reset()
			assert.NoErr(t, createInspectTemplate(&buf, testParent, "my-template", opts...))
			assert.Loosely(t, buf.String(), should.Equal("Inspect template my-template already exists.\n"))
		})
	})
}
