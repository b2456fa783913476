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

// Package corpus implements the dictionary word corpus.
//
// The corpus is the full word list of a constructed-language dictionary.
// Words can be imported from and exported to the JSON interchange format
// used by dictionary apps, and evolved in bulk by applying a sound change
// rule set to every term.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ianlewis/go-soundchange"
)

var (
	// ErrNotFound indicates the requested word is not in the corpus.
	ErrNotFound = errors.New("word not found")

	// ErrExists indicates a word with the same ID is already in the corpus.
	ErrExists = errors.New("word already exists")
)

// Word is a dictionary entry. Batch sound change application rewrites only
// the Term field; all other fields are left untouched.
type Word struct {
	// ID uniquely identifies the word within the corpus.
	ID string

	// Term is the word itself.
	Term string

	// Pronunciation is the word's pronunciation (e.g. IPA).
	Pronunciation string

	// PartOfSpeech is the word's grammatical category.
	PartOfSpeech string

	// Definition is the word's plain-text definition.
	Definition string

	// Notes holds free-form notes (e.g. etymology).
	Notes string

	// CreatedAt is the time the word was added to the corpus.
	CreatedAt time.Time

	// UpdatedAt is the time the word was last modified.
	UpdatedAt time.Time
}

// GetTerm implements [soundchange.TermHolder].
func (w *Word) GetTerm() string {
	return w.Term
}

// SetTerm implements [soundchange.TermHolder].
func (w *Word) SetTerm(term string) {
	w.Term = term
}

// Store is a persistent word corpus.
type Store interface {
	// AddWord adds a new word. It returns ErrExists if a word with the same
	// ID is already present.
	AddWord(ctx context.Context, w Word) error

	// GetWord returns the word with the given ID or ErrNotFound.
	GetWord(ctx context.Context, id string) (Word, error)

	// ListWords returns all words ordered by term.
	ListWords(ctx context.Context) ([]Word, error)

	// UpdateTerm overwrites the term of the word with the given ID. It
	// returns ErrNotFound if the word is not present.
	UpdateTerm(ctx context.Context, id, term string) error

	// DeleteWord removes the word with the given ID or returns ErrNotFound.
	DeleteWord(ctx context.Context, id string) error

	// Close releases the store's resources.
	Close() error
}

// Evolve applies rules to every word in the store and persists the terms
// that changed. Each word's final term equals applying the rules to its
// original term; unchanged words are not rewritten. It returns the number
// of words whose term changed.
func Evolve(ctx context.Context, s Store, e *soundchange.Engine, rules []soundchange.Rule) (int, error) {
	words, err := s.ListWords(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing words: %w", err)
	}

	before := make([]string, len(words))
	holders := make([]soundchange.TermHolder, len(words))
	for i := range words {
		before[i] = words[i].Term
		holders[i] = &words[i]
	}

	if _, err := e.ApplyBatch(ctx, holders, rules); err != nil {
		return 0, err
	}

	var changed int
	for i := range words {
		if words[i].Term == before[i] {
			continue
		}
		if err := s.UpdateTerm(ctx, words[i].ID, words[i].Term); err != nil {
			return changed, fmt.Errorf("updating word %q: %w", words[i].ID, err)
		}
		changed++
	}

	return changed, nil
}
