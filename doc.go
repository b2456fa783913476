// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package soundchange implements a sound change applier for constructed
// languages in pure Go.
//
// A sound change is a systematic phonological transformation applied to a
// word, modeling historical language evolution. It is expressed as an
// ordered list of find/replace rules:
//  1. The find pattern is a regular expression matched against the word.
//     A rule with an empty find pattern is disabled and is skipped.
//  2. The replacement may reference captured groups using the Go regexp
//     replacement syntax (e.g. $1).
//
// Rules compose sequentially. Each rule sees the output of the previous
// rule, never the original word, so the order of rules in a rule set is
// semantically significant.
//
// Rule sets can be persisted as named presets (see the preset package) and
// applied in bulk to a word corpus (see the corpus package).
package soundchange
