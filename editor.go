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

import (
	"errors"
	"fmt"
)

// ErrRuleIndex indicates a rule index outside the editor's rule set.
var ErrRuleIndex = errors.New("rule index out of range")

// Editor holds an ordered, mutable rule set for an editing session. An
// editor always holds at least one rule slot so there is always something
// to edit; a "removed" or cleared rule is represented by an empty rule that
// application skips.
type Editor struct {
	rules []Rule
}

// NewEditor returns an Editor holding a single empty rule.
func NewEditor() *Editor {
	return &Editor{
		rules: []Rule{{}},
	}
}

// Len returns the number of rule slots.
func (e *Editor) Len() int {
	return len(e.rules)
}

// Rules returns a copy of the current rule set.
func (e *Editor) Rules() []Rule {
	return CloneRules(e.rules)
}

// AddRule appends an empty rule slot.
func (e *Editor) AddRule() {
	e.rules = append(e.rules, Rule{})
}

// SetRule replaces the rule at index i.
func (e *Editor) SetRule(i int, rule Rule) error {
	if i < 0 || i >= len(e.rules) {
		return fmt.Errorf("%w: %d", ErrRuleIndex, i)
	}
	e.rules[i] = rule
	return nil
}

// RemoveRule removes the rule at index i. Later rules shift down one slot.
// Removing the final rule leaves a single empty slot rather than an empty
// rule set.
func (e *Editor) RemoveRule(i int) error {
	if i < 0 || i >= len(e.rules) {
		return fmt.Errorf("%w: %d", ErrRuleIndex, i)
	}
	e.rules = append(e.rules[:i], e.rules[i+1:]...)
	if len(e.rules) == 0 {
		e.rules = []Rule{{}}
	}
	return nil
}

// Clear resets the editor to a single empty rule.
func (e *Editor) Clear() {
	e.rules = []Rule{{}}
}

// Load replaces the editor's rule set with a copy of rules. Edits made
// afterwards do not affect the caller's slice. Loading an empty or nil
// slice resets the editor to a single empty rule.
func (e *Editor) Load(rules []Rule) {
	if len(rules) == 0 {
		e.Clear()
		return
	}
	e.rules = CloneRules(rules)
}
