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

package corpus

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ianlewis/go-dictzip"
	"github.com/k3a/html2text"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-soundchange/internal/folding"
)

// wordJSON is the JSON interchange representation of a word. The format
// matches the word-list objects found in dictionary app exports.
type wordJSON struct {
	ID            string `json:"id,omitempty"`
	Term          string `json:"term"`
	Pronunciation string `json:"pronunciation,omitempty"`
	PartOfSpeech  string `json:"partOfSpeech,omitempty"`
	Definition    string `json:"definition,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Import reads a JSON word list from r and adds each word to the store.
// Terms are folded (Unicode NFC, whitespace folding), rich-text definitions
// are reduced to plain text, and words without an ID are assigned one.
// Words whose term is empty after folding are skipped. It returns the
// number of words added.
func Import(ctx context.Context, s Store, r io.Reader) (int, error) {
	var words []wordJSON
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return 0, fmt.Errorf("parsing word list: %w", err)
	}

	var added int
	for _, w := range words {
		term, _, err := transform.String(folding.Term(), w.Term)
		if err != nil {
			return added, fmt.Errorf("folding term %q: %w", w.Term, err)
		}
		if term == "" {
			continue
		}

		definition := w.Definition
		if strings.Contains(definition, "<") {
			// Dictionary apps export definitions from rich-text editors as
			// HTML fragments.
			definition = strings.TrimSpace(html2text.HTML2Text(definition))
		}

		id := w.ID
		if id == "" {
			id = uuid.NewString()
		}

		if err := s.AddWord(ctx, Word{
			ID:            id,
			Term:          term,
			Pronunciation: w.Pronunciation,
			PartOfSpeech:  w.PartOfSpeech,
			Definition:    definition,
			Notes:         w.Notes,
		}); err != nil {
			return added, fmt.Errorf("adding word %q: %w", term, err)
		}
		added++
	}

	return added, nil
}

// ImportFile imports the JSON word list at path. Files with a .gz or .dz
// extension are decompressed transparently.
func ImportFile(ctx context.Context, s Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return Import(ctx, s, r)
}

// Export writes the store's full word list to w as JSON.
func Export(ctx context.Context, s Store, w io.Writer) error {
	words, err := s.ListWords(ctx)
	if err != nil {
		return fmt.Errorf("listing words: %w", err)
	}

	out := make([]wordJSON, 0, len(words))
	for _, word := range words {
		out = append(out, wordJSON{
			ID:            word.ID,
			Term:          word.Term,
			Pronunciation: word.Pronunciation,
			PartOfSpeech:  word.PartOfSpeech,
			Definition:    word.Definition,
			Notes:         word.Notes,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding word list: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing word list: %w", err)
	}
	return nil
}

// ExportFile writes the store's full word list to the file at path.
func ExportFile(ctx context.Context, s Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	if err := Export(ctx, s, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}
