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

package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound indicates that no preset exists with the given name.
	ErrNotFound = errors.New("preset not found")

	// ErrExists indicates that a preset with the given name already exists.
	// Saving never silently overwrites; delete the existing preset first.
	ErrExists = errors.New("preset already exists")
)

// storeFile is the on-disk layout of the preset store.
type storeFile struct {
	Presets []Preset `json:"presets"`
}

// Store is a JSON-file-backed preset store. Writes go to a temporary file
// which is renamed over the store file so the store is never observed half
// written. Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	path    string
	presets []Preset
}

// Open loads the preset store at path, or returns an empty store if the
// file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading preset store %q: %w", path, err)
	}

	var f storeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing preset store %q: %w", path, err)
	}
	s.presets = f.Presets

	return s, nil
}

// List returns all presets. The returned presets are copies; mutating them
// does not affect the store.
func (s *Store) List() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		presets = append(presets, New(p.Name, p.Rules))
	}
	return presets
}

// Get returns a copy of the named preset.
func (s *Store) Get(name string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.presets {
		if p.Name == name {
			return New(p.Name, p.Rules), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Save persists a new preset. Preset names are unique within a store; Save
// returns ErrExists for a duplicate name.
func (s *Store) Save(p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.presets {
		if existing.Name == p.Name {
			return fmt.Errorf("%w: %q", ErrExists, p.Name)
		}
	}

	presets := append(append([]Preset{}, s.presets...), New(p.Name, p.Rules))
	if err := s.writeAtomic(presets); err != nil {
		return err
	}
	s.presets = presets
	return nil
}

// Delete removes the named preset.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := -1
	for j, p := range s.presets {
		if p.Name == name {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	presets := append(append([]Preset{}, s.presets[:i]...), s.presets[i+1:]...)
	if err := s.writeAtomic(presets); err != nil {
		return err
	}
	s.presets = presets
	return nil
}

// writeAtomic writes presets to a temp file then renames it over the store
// file. Callers must hold s.mu.
func (s *Store) writeAtomic(presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating preset store directory: %w", err)
	}

	f := storeFile{Presets: presets}
	if f.Presets == nil {
		f.Presets = []Preset{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preset store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing preset store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing preset store: %w", err)
	}
	return nil
}
