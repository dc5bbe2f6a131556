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
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.chromium.org/luci/common/errors"
)

// regionTag matches one region marker anywhere in a line, regardless of the
// comment syntax around it.
var regionTag = regexp.MustCompile(`\[(START|END) ([a-z0-9_]+)\]`)

// languageExts maps the language names used in spec files to the file
// extensions carrying code for them. Only these extensions are scanned.
var languageExts = map[string][]string{
	"go":        {".go"},
	"python":    {".py"},
	"java":      {".java"},
	"nodejs":    {".js", ".ts"},
	"ruby":      {".rb"},
	"php":       {".php"},
	"csharp":    {".cs"},
	"cpp":       {".cc", ".cpp"},
	"terraform": {".tf"},
}

// extLanguage is the reverse lookup, extension -> language.
var extLanguage = map[string]string{}

func init() {
	for lang, exts := range languageExts {
		for _, ext := range exts {
			extLanguage[ext] = lang
		}
	}
}

// Occurrence is one complete [START <tag>]...[END <tag>] region in one file.
type Occurrence struct {
	// Path is the file holding the region, relative to the audit root.
	Path string `json:"path"`
	// Line is the 1-based line of the [START ...] marker.
	Line int `json:"line"`
	// Language is derived from the file extension.
	Language string `json:"language"`
}

// Unbalanced is a region marker with no matching counterpart in its file.
type Unbalanced struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Tag  string `json:"tag"`
	// Kind is "START" or "END".
	Kind string `json:"kind"`
}

// TagIndex holds every region tag found under a root.
type TagIndex struct {
	// Tags maps tag -> occurrences, in file order.
	Tags map[string][]Occurrence
	// Unbalanced lists markers with no matching counterpart.
	Unbalanced []Unbalanced
	// Files is how many files were scanned.
	Files int
}

// BuildTagIndex scans every code file under root once, collecting region
// markers. Markers are matched within a file: a START with no END in the
// same file, or the reverse, is recorded as unbalanced rather than indexed.
func BuildTagIndex(root string) (*TagIndex, error) {
	idx := &TagIndex{Tags: map[string][]Occurrence{}}
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
		lang, ok := extLanguage[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		return idx.scanFile(root, rel, lang)
	})
	if err != nil {
		return nil, errors.Fmt("walking %s: %w", root, err)
	}
	sort.Slice(idx.Unbalanced, func(i, j int) bool {
		a, b := idx.Unbalanced[i], idx.Unbalanced[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Tag < b.Tag
	})
	return idx, nil
}

func (idx *TagIndex) scanFile(root, rel, lang string) error {
	f, err := os.Open(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	defer f.Close()
	idx.Files++

	// open[tag] is the line of the as yet unmatched START marker.
	open := map[string]int{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		for _, m := range regionTag.FindAllStringSubmatch(sc.Text(), -1) {
			kind, tag := m[1], m[2]
			switch kind {
			case "START":
				if _, dup := open[tag]; dup {
					idx.Unbalanced = append(idx.Unbalanced, Unbalanced{Path: rel, Line: line, Tag: tag, Kind: kind})
					continue
				}
				open[tag] = line
			case "END":
				startLine, ok := open[tag]
				if !ok {
					idx.Unbalanced = append(idx.Unbalanced, Unbalanced{Path: rel, Line: line, Tag: tag, Kind: kind})
					continue
				}
				delete(open, tag)
				idx.Tags[tag] = append(idx.Tags[tag], Occurrence{Path: rel, Line: startLine, Language: lang})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Fmt("scanning %s: %w", rel, err)
	}
	for tag, line := range open {
		idx.Unbalanced = append(idx.Unbalanced, Unbalanced{Path: rel, Line: line, Tag: tag, Kind: "START"})
	}
	return nil
}

// Version components inside a tag name, like "_v1_", "_v1beta1_", or a
// trailing "_v2".
var (
	versionMid  = regexp.MustCompile(`_v\d+(?:(?:alpha|beta|p)\d*)?_`)
	versionTail = regexp.MustCompile(`_v\d+(?:(?:alpha|beta|p)\d*)?$`)
)

// DeriveVersionlessTag strips the API-version component out of a region tag:
// "translate_v3_translate_text" becomes "translate_translate_text", and
// "speech_transcribe_v2" becomes "speech_transcribe". Tags with no version
// component come back unchanged.
func DeriveVersionlessTag(tag string) string {
	out := versionMid.ReplaceAllString(tag, "_")
	return versionTail.ReplaceAllString(out, "")
}
