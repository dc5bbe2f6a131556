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
	"fmt"
	"io"
)

// Missing is a declared tag with fewer tagged files than the spec expects.
type Missing struct {
	Tag      string `json:"tag"`
	Language string `json:"language"`
	SpecPath string `json:"spec"`
	Want     int    `json:"want"`
	Got      int    `json:"got"`
	// Versionless is the fallback form that was also tried, when distinct
	// from Tag.
	Versionless string `json:"versionless,omitempty"`
}

// Orphan is a tagged code block no spec declares.
type Orphan struct {
	Tag         string       `json:"tag"`
	Occurrences []Occurrence `json:"occurrences"`
}

// UnknownLanguage is a spec entry naming a language the audit cannot map to
// file extensions.
type UnknownLanguage struct {
	Tag      string `json:"tag"`
	Language string `json:"language"`
	SpecPath string `json:"spec"`
}

// Report is the outcome of one audit run.
type Report struct {
	Root             string            `json:"root"`
	SpecCount        int               `json:"spec_count"`
	FileCount        int               `json:"file_count"`
	TagCount         int               `json:"tag_count"`
	Missing          []Missing         `json:"missing,omitempty"`
	Orphans          []Orphan          `json:"orphans,omitempty"`
	Unbalanced       []Unbalanced      `json:"unbalanced,omitempty"`
	UnknownLanguages []UnknownLanguage `json:"unknown_languages,omitempty"`
}

// Findings is the total number of problems in the report.
func (r *Report) Findings() int {
	return len(r.Missing) + len(r.Orphans) + len(r.Unbalanced) + len(r.UnknownLanguages)
}

// Clean reports whether the audit found nothing wrong.
func (r *Report) Clean() bool {
	return r.Findings() == 0
}

// MissingOnly drops every section except the missing samples. Findings, and
// with it the caller's exit code, then follows the remaining section.
func (r *Report) MissingOnly() {
	r.Orphans = nil
	r.Unbalanced = nil
	r.UnknownLanguages = nil
}

// OrphansOnly drops every section except the orphaned tags.
func (r *Report) OrphansOnly() {
	r.Missing = nil
	r.Unbalanced = nil
	r.UnknownLanguages = nil
}

// Format writes the human-readable report.
func (r *Report) Format(w io.Writer) {
	fmt.Fprintf(w, "audited %s: %d spec file(s), %d file(s) scanned, %d distinct region tag(s)\n",
		r.Root, r.SpecCount, r.FileCount, r.TagCount)
	for _, m := range r.Missing {
		fmt.Fprintf(w, "MISSING %s (%s): declared in %s, want %d file(s), found %d",
			m.Tag, m.Language, m.SpecPath, m.Want, m.Got)
		if m.Versionless != "" {
			fmt.Fprintf(w, " (also tried %q)", m.Versionless)
		}
		fmt.Fprintln(w)
	}
	for _, o := range r.Orphans {
		fmt.Fprintf(w, "ORPHAN %s: tagged code not declared in any spec\n", o.Tag)
		for _, occ := range o.Occurrences {
			fmt.Fprintf(w, "  %s:%d\n", occ.Path, occ.Line)
		}
	}
	for _, u := range r.Unbalanced {
		fmt.Fprintf(w, "UNBALANCED %s:%d: [%s %s] with no matching marker\n", u.Path, u.Line, u.Kind, u.Tag)
	}
	for _, u := range r.UnknownLanguages {
		fmt.Fprintf(w, "UNKNOWN LANGUAGE %q for %s in %s\n", u.Language, u.Tag, u.SpecPath)
	}
	if r.Clean() {
		fmt.Fprintln(w, "ok")
	} else {
		fmt.Fprintf(w, "%d finding(s)\n", r.Findings())
	}
}
