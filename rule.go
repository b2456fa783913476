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

package soundchange

// Rule is a single find/replace transformation. Find is a regular
// expression pattern and Replace is its replacement template. An empty Find
// disables the rule. Rules have no identity beyond their position in a rule
// set.
type Rule struct {
	// Find is the regular expression pattern to search for.
	Find string `json:"find"`

	// Replace is the replacement template. It may reference capture groups
	// in Find using the Go regexp replacement syntax (e.g. $1).
	Replace string `json:"replace"`
}

// CloneRules returns a copy of rules that shares no memory with the
// original. Loading a preset's rules into an editor must not allow edits to
// leak back into the stored preset.
func CloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	cloned := make([]Rule, len(rules))
	copy(cloned, rules)
	return cloned
}
