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

package preset_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-soundchange"
	"github.com/ianlewis/go-soundchange/preset"
)

// TestStore_Open tests opening stores.
func TestStore_Open(t *testing.T) {
	t.Parallel()

	t.Run("missing file is an empty store", func(t *testing.T) {
		t.Parallel()

		s, err := preset.Open(filepath.Join(t.TempDir(), "presets.json"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if got := s.List(); len(got) != 0 {
			t.Errorf("List: expected empty store, got %v", got)
		}
	})
}

// TestStore_Save tests saving and reloading presets.
func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "presets.json")
		s, err := preset.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}

		// Rule order and empty-string fields must round-trip exactly.
		rules := []soundchange.Rule{
			{Find: "a", Replace: "b"},
			{Find: "", Replace: ""},
			{Find: "b$", Replace: ""},
		}
		if err := s.Save(preset.New("grimm", rules)); err != nil {
			t.Fatalf("Save: %v", err)
		}

		s2, err := preset.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		p, err := s2.Get("grimm")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if diff := cmp.Diff(rules, p.RuleSet()); diff != "" {
			t.Errorf("RuleSet (-want, +got):\n%s", diff)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		s, err := preset.Open(filepath.Join(t.TempDir(), "presets.json"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}

		if err := s.Save(preset.New("grimm", nil)); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := s.Save(preset.New("grimm", nil)); !errors.Is(err, preset.ErrExists) {
			t.Errorf("Save: expected %v, got %v", preset.ErrExists, err)
		}
	})

	t.Run("preset is immutable once saved", func(t *testing.T) {
		t.Parallel()

		s, err := preset.Open(filepath.Join(t.TempDir(), "presets.json"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}

		rules := []soundchange.Rule{
			{Find: "a", Replace: "b"},
		}
		if err := s.Save(preset.New("grimm", rules)); err != nil {
			t.Fatalf("Save: %v", err)
		}

		// Mutating the caller's slice or a loaded copy must not mutate the
		// stored preset.
		rules[0].Find = "z"
		p, err := s.Get("grimm")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		loaded := p.RuleSet()
		loaded[0].Replace = "y"

		p2, err := s.Get("grimm")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		expected := []soundchange.Rule{
			{Find: "a", Replace: "b"},
		}
		if diff := cmp.Diff(expected, p2.RuleSet()); diff != "" {
			t.Errorf("RuleSet (-want, +got):\n%s", diff)
		}
	})
}

// TestStore_Get tests preset lookup.
func TestStore_Get(t *testing.T) {
	t.Parallel()

	s, err := preset.Open(filepath.Join(t.TempDir(), "presets.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := s.Get("missing"); !errors.Is(err, preset.ErrNotFound) {
		t.Errorf("Get: expected %v, got %v", preset.ErrNotFound, err)
	}
}

// TestStore_Delete tests preset deletion.
func TestStore_Delete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.json")
	s, err := preset.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := s.Save(preset.New("grimm", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(preset.New("verner", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Delete("grimm"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("grimm"); !errors.Is(err, preset.ErrNotFound) {
		t.Errorf("Get: expected %v, got %v", preset.ErrNotFound, err)
	}
	if _, err := s.Get("verner"); err != nil {
		t.Errorf("Get: %v", err)
	}

	if err := s.Delete("grimm"); !errors.Is(err, preset.ErrNotFound) {
		t.Errorf("Delete: expected %v, got %v", preset.ErrNotFound, err)
	}

	// Deletion persists across reloads.
	s2, err := preset.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := len(s2.List()); got != 1 {
		t.Errorf("List: expected 1 preset, got %d", got)
	}
}
