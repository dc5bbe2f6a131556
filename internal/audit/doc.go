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

// Package audit cross-checks sample spec files against the region tags
// actually present in a source tree.
//
// Documentation pages declare which samples they embed through *.spec.json
// files checked in next to the samples. Each spec lists region tags, the
// languages expected to carry them, and how many files per language. The
// audit walks the tree once, indexes every `[START <tag>]`/`[END <tag>]` marker
// pair in code files, and reports:
//
//   - declared tags with fewer tagged files than expected ("missing");
//   - tagged code blocks no spec declares ("orphans");
//   - markers with no matching counterpart in the same file;
//   - spec entries naming a language the audit does not know.
//
// A declared tag also matches versioned forms of itself, so a spec written
// against "translate_translate_text" keeps passing when the sample migrates
// to "translate_v3_translate_text".
package audit
