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

// Package preset implements named, persisted rule sets.
//
// A preset is a snapshot of a rule set saved under a name so it can be
// reused across sessions. Presets are immutable once saved; they are
// created, loaded, and deleted but never updated in place.
package preset

import (
	"github.com/ianlewis/go-soundchange"
)

// Preset is a named rule set. The rules are stored as an ordered list of
// find/replace pairs; order and empty-string fields are preserved exactly
// when a preset round-trips through the store.
type Preset struct {
	// Name is the preset name. The Store enforces uniqueness.
	Name string `json:"name"`

	// Rules is the ordered rule set.
	Rules []soundchange.Rule `json:"rules"`
}

// New returns a Preset holding a copy of rules. Later edits to rules do not
// affect the preset.
func New(name string, rules []soundchange.Rule) Preset {
	return Preset{
		Name:  name,
		Rules: soundchange.CloneRules(rules),
	}
}

// RuleSet returns a copy of the preset's rules suitable for loading into an
// editor. Mutating the returned slice does not mutate the preset.
func (p Preset) RuleSet() []soundchange.Rule {
	return soundchange.CloneRules(p.Rules)
}
