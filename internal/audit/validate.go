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
	"context"
	"sort"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
)

// Validate audits the tree under root: every tag declared in a spec must
// appear in at least the expected number of files per language, and every
// tagged code block must be declared by some spec. A declared tag also
// matches versioned forms of itself, and vice versa.
func Validate(ctx context.Context, root string) (*Report, error) {
	specPaths, err := FindSpecs(root)
	if err != nil {
		return nil, errors.Fmt("finding specs: %w", err)
	}
	idx, err := BuildTagIndex(root)
	if err != nil {
		return nil, errors.Fmt("indexing region tags: %w", err)
	}
	logging.Debugf(ctx, "audit: %d spec file(s), %d file(s) scanned, %d distinct tag(s)",
		len(specPaths), idx.Files, len(idx.Tags))

	// versioned[v] lists the tags in the tree whose versionless form is v.
	versioned := map[string][]string{}
	for tag := range idx.Tags {
		if v := DeriveVersionlessTag(tag); v != tag {
			versioned[v] = append(versioned[v], tag)
		}
	}
	for _, tags := range versioned {
		sort.Strings(tags)
	}

	report := &Report{
		Root:       root,
		SpecCount:  len(specPaths),
		FileCount:  idx.Files,
		TagCount:   len(idx.Tags),
		Unbalanced: idx.Unbalanced,
	}
	claimed := stringset.New(len(idx.Tags))

	for _, specPath := range specPaths {
		spec, err := LoadSpec(root, specPath)
		if err != nil {
			return nil, err
		}
		for _, sample := range spec.Samples {
			want := sample.Instances
			if want == 0 {
				want = 1
			}

			// Index tags satisfying this declaration: the exact tag, any
			// versioned form of it, and its versionless form.
			matching := stringset.New(1)
			if _, ok := idx.Tags[sample.Tag]; ok {
				matching.Add(sample.Tag)
			}
			base := DeriveVersionlessTag(sample.Tag)
			matching.AddAll(versioned[base])
			if base != sample.Tag {
				if _, ok := idx.Tags[base]; ok {
					matching.Add(base)
				}
			}
			claimed.AddAll(matching.ToSlice())

			for _, lang := range sample.Languages {
				if _, known := languageExts[lang]; !known {
					report.UnknownLanguages = append(report.UnknownLanguages, UnknownLanguage{
						Tag:      sample.Tag,
						Language: lang,
						SpecPath: specPath,
					})
					continue
				}
				files := stringset.New(want)
				for _, tag := range matching.ToSortedSlice() {
					for _, occ := range idx.Tags[tag] {
						if occ.Language == lang {
							files.Add(occ.Path)
						}
					}
				}
				if files.Len() < want {
					m := Missing{
						Tag:      sample.Tag,
						Language: lang,
						SpecPath: specPath,
						Want:     want,
						Got:      files.Len(),
					}
					if base != sample.Tag {
						m.Versionless = base
					}
					report.Missing = append(report.Missing, m)
				}
			}
		}
	}

	for tag, occs := range idx.Tags {
		if claimed.Has(tag) {
			continue
		}
		report.Orphans = append(report.Orphans, Orphan{Tag: tag, Occurrences: occs})
	}
	sort.Slice(report.Orphans, func(i, j int) bool {
		return report.Orphans[i].Tag < report.Orphans[j].Tag
	})
	return report, nil
}
