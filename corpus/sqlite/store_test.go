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

package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-soundchange/corpus"
	"github.com/ianlewis/go-soundchange/corpus/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// ignoreTimestamps ignores the store-managed timestamp fields.
var ignoreTimestamps = cmpopts.IgnoreFields(corpus.Word{}, "CreatedAt", "UpdatedAt")

// TestStore_AddWord tests adding words.
func TestStore_AddWord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)

	w := corpus.Word{
		ID:            "w1",
		Term:          "kat",
		Pronunciation: "/kat/",
		PartOfSpeech:  "noun",
		Definition:    "a cat",
		Notes:         "from proto-lang *katu",
	}
	if err := s.AddWord(ctx, w); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	got, err := s.GetWord(ctx, "w1")
	if err != nil {
		t.Fatalf("GetWord: %v", err)
	}
	if diff := cmp.Diff(w, got, ignoreTimestamps); diff != "" {
		t.Errorf("GetWord (-want, +got):\n%s", diff)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Errorf("expected timestamps to be set, got %v, %v", got.CreatedAt, got.UpdatedAt)
	}

	if err := s.AddWord(ctx, w); !errors.Is(err, corpus.ErrExists) {
		t.Errorf("AddWord: expected %v, got %v", corpus.ErrExists, err)
	}
}

// TestStore_GetWord tests word lookup.
func TestStore_GetWord(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	if _, err := s.GetWord(context.Background(), "missing"); !errors.Is(err, corpus.ErrNotFound) {
		t.Errorf("GetWord: expected %v, got %v", corpus.ErrNotFound, err)
	}
}

// TestStore_ListWords tests listing order.
func TestStore_ListWords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)

	for _, w := range []corpus.Word{
		{ID: "w1", Term: "mus"},
		{ID: "w2", Term: "kat"},
		{ID: "w3", Term: "tir"},
	} {
		if err := s.AddWord(ctx, w); err != nil {
			t.Fatalf("AddWord: %v", err)
		}
	}

	words, err := s.ListWords(ctx)
	if err != nil {
		t.Fatalf("ListWords: %v", err)
	}

	var terms []string
	for _, w := range words {
		terms = append(terms, w.Term)
	}
	expected := []string{"kat", "mus", "tir"}
	if diff := cmp.Diff(expected, terms); diff != "" {
		t.Errorf("ListWords (-want, +got):\n%s", diff)
	}
}

// TestStore_UpdateTerm tests term updates.
func TestStore_UpdateTerm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)

	if err := s.AddWord(ctx, corpus.Word{ID: "w1", Term: "kat", Definition: "a cat"}); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	if err := s.UpdateTerm(ctx, "w1", "gat"); err != nil {
		t.Fatalf("UpdateTerm: %v", err)
	}

	got, err := s.GetWord(ctx, "w1")
	if err != nil {
		t.Fatalf("GetWord: %v", err)
	}
	if got.Term != "gat" {
		t.Errorf("expected term %q, got %q", "gat", got.Term)
	}
	// Only the term changes.
	if got.Definition != "a cat" {
		t.Errorf("expected definition %q, got %q", "a cat", got.Definition)
	}

	if err := s.UpdateTerm(ctx, "missing", "x"); !errors.Is(err, corpus.ErrNotFound) {
		t.Errorf("UpdateTerm: expected %v, got %v", corpus.ErrNotFound, err)
	}
}

// TestStore_DeleteWord tests word deletion.
func TestStore_DeleteWord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openTestStore(t)

	if err := s.AddWord(ctx, corpus.Word{ID: "w1", Term: "kat"}); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	if err := s.DeleteWord(ctx, "w1"); err != nil {
		t.Fatalf("DeleteWord: %v", err)
	}
	if _, err := s.GetWord(ctx, "w1"); !errors.Is(err, corpus.ErrNotFound) {
		t.Errorf("GetWord: expected %v, got %v", corpus.ErrNotFound, err)
	}
	if err := s.DeleteWord(ctx, "w1"); !errors.Is(err, corpus.ErrNotFound) {
		t.Errorf("DeleteWord: expected %v, got %v", corpus.ErrNotFound, err)
	}
}
