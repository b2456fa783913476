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

package soundchange_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-soundchange"
)

// TestEditor tests rule slot management.
func TestEditor(t *testing.T) {
	t.Parallel()

	t.Run("starts with one empty rule", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		expected := []soundchange.Rule{{}}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})

	t.Run("add and set rules", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		e.AddRule()
		if err := e.SetRule(0, soundchange.Rule{Find: "a", Replace: "b"}); err != nil {
			t.Fatalf("SetRule: %v", err)
		}
		if err := e.SetRule(1, soundchange.Rule{Find: "b", Replace: "c"}); err != nil {
			t.Fatalf("SetRule: %v", err)
		}

		expected := []soundchange.Rule{
			{Find: "a", Replace: "b"},
			{Find: "b", Replace: "c"},
		}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})

	t.Run("set rule out of range", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		err := e.SetRule(1, soundchange.Rule{Find: "a"})
		if !errors.Is(err, soundchange.ErrRuleIndex) {
			t.Errorf("SetRule: expected %v, got %v", soundchange.ErrRuleIndex, err)
		}
	})

	t.Run("remove rule", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		e.Load([]soundchange.Rule{
			{Find: "a", Replace: "b"},
			{Find: "b", Replace: "c"},
		})

		if err := e.RemoveRule(0); err != nil {
			t.Fatalf("RemoveRule: %v", err)
		}

		expected := []soundchange.Rule{
			{Find: "b", Replace: "c"},
		}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})

	t.Run("remove rule out of range", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		if err := e.RemoveRule(-1); !errors.Is(err, soundchange.ErrRuleIndex) {
			t.Errorf("RemoveRule: expected %v, got %v", soundchange.ErrRuleIndex, err)
		}
		if err := e.RemoveRule(1); !errors.Is(err, soundchange.ErrRuleIndex) {
			t.Errorf("RemoveRule: expected %v, got %v", soundchange.ErrRuleIndex, err)
		}
	})

	t.Run("remove final rule leaves empty slot", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		if err := e.RemoveRule(0); err != nil {
			t.Fatalf("RemoveRule: %v", err)
		}

		expected := []soundchange.Rule{{}}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})

	t.Run("clear resets to one empty rule", func(t *testing.T) {
		t.Parallel()

		e := soundchange.NewEditor()
		e.Load([]soundchange.Rule{
			{Find: "a", Replace: "b"},
			{Find: "b", Replace: "c"},
		})
		e.Clear()

		expected := []soundchange.Rule{{}}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})

	t.Run("load copies rules", func(t *testing.T) {
		t.Parallel()

		rules := []soundchange.Rule{
			{Find: "a", Replace: "b"},
		}

		e := soundchange.NewEditor()
		e.Load(rules)

		// Mutating the loaded slice must not mutate the editor.
		rules[0].Find = "z"

		expected := []soundchange.Rule{
			{Find: "a", Replace: "b"},
		}
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}

		// Mutating a returned copy must not mutate the editor either.
		got := e.Rules()
		got[0].Replace = "y"
		if diff := cmp.Diff(expected, e.Rules()); diff != "" {
			t.Errorf("Rules (-want, +got):\n%s", diff)
		}
	})
}
