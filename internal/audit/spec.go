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

package audit

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"

	"go.chromium.org/luci/common/errors"
)

// specGlob matches spec files at any depth under the audit root.
const specGlob = "**/*.spec.json"

// Spec mirrors one *.spec.json file: the region tags a product directory is
// expected to provide, per language.
type Spec struct {
	// Product names the product the directory covers, e.g. "secretmanager".
	Product string `json:"product"`
	// Samples declares the tags documentation extracts from this directory.
	Samples []*SampleSpec `json:"samples"`

	// Path is where the spec was loaded from, relative to the audit root.
	Path string `json:"-"`
}

// SampleSpec declares one expected sample.
type SampleSpec struct {
	// Tag is the region tag, e.g. "secretmanager_create_secret".
	Tag string `json:"tag"`
	// Languages lists the languages the docs embed for this tag.
	Languages []string `json:"languages"`
	// Instances is how many files per language should carry the tag.
	// Zero means one. The check is one-sided: fewer files than this is
	// reported as missing, extra files carrying a declared tag are not
	// findings.
	Instances int `json:"instances,omitempty"`
}

// skipDir reports whether a directory is excluded from scanning. Mirrors the
// Go toolchain: "_" and "." prefixes hide a tree, and vendored third-party
// code is not ours to audit.
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	switch name {
	case "vendor", "node_modules", "testdata":
		return true
	}
	return false
}

// FindSpecs returns the spec files under root, relative to root, sorted.
func FindSpecs(root string) ([]string, error) {
	var specs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && skipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		ok, err := doublestar.PathMatch(specGlob, rel)
		if err != nil {
			return err
		}
		if ok {
			specs = append(specs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Fmt("walking %s: %w", root, err)
	}
	sort.Strings(specs)
	return specs, nil
}

// LoadSpec reads and validates one spec file. rel is the path returned by
// FindSpecs.
func LoadSpec(root, rel string) (*Spec, error) {
	raw, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return nil, errors.Fmt("reading spec: %w", err)
	}
	spec := &Spec{Path: rel}
	if err := json.Unmarshal(raw, spec); err != nil {
		return nil, errors.Fmt("parsing %s: %w", rel, err)
	}
	for i, s := range spec.Samples {
		switch {
		case s.Tag == "":
			return nil, errors.Fmt("%s: samples[%d] has no tag", rel, i)
		case len(s.Languages) == 0:
			return nil, errors.Fmt("%s: tag %q declares no languages", rel, s.Tag)
		case s.Instances < 0:
			return nil, errors.Fmt("%s: tag %q declares negative instances", rel, s.Tag)
		}
	}
	return spec, nil
}
