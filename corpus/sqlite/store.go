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

// Package sqlite provides a SQLite-backed word corpus store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/ianlewis/go-soundchange/corpus"
	"github.com/ianlewis/go-soundchange/corpus/sqlite/migrations"
	"github.com/ianlewis/go-soundchange/internal/sqlitemigrate"
)

// Store persists the word corpus in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite corpus store at path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("corpus path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening corpus db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging corpus db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	//nolint:wrapcheck // close error is returned as is.
	return s.sqlDB.Close()
}

// AddWord implements [corpus.Store.AddWord].
func (s *Store) AddWord(ctx context.Context, w corpus.Word) error {
	if w.ID == "" {
		return errors.New("word id is required")
	}
	if w.Term == "" {
		return errors.New("word term is required")
	}

	createdAt := w.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := w.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO words (
		   id,
		   term,
		   pronunciation,
		   part_of_speech,
		   definition,
		   notes,
		   created_at,
		   updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.Term,
		w.Pronunciation,
		w.PartOfSpeech,
		w.Definition,
		w.Notes,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", corpus.ErrExists, w.ID)
		}
		return fmt.Errorf("adding word: %w", err)
	}
	return nil
}

// GetWord implements [corpus.Store.GetWord].
func (s *Store) GetWord(ctx context.Context, id string) (corpus.Word, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, term, pronunciation, part_of_speech, definition, notes,
		        created_at, updated_at
		 FROM words WHERE id = ?`,
		id,
	)
	w, err := scanWord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return corpus.Word{}, fmt.Errorf("%w: %q", corpus.ErrNotFound, id)
		}
		return corpus.Word{}, fmt.Errorf("getting word: %w", err)
	}
	return w, nil
}

// ListWords implements [corpus.Store.ListWords].
func (s *Store) ListWords(ctx context.Context) ([]corpus.Word, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, term, pronunciation, part_of_speech, definition, notes,
		        created_at, updated_at
		 FROM words ORDER BY term, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	defer rows.Close()

	var words []corpus.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("listing words: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	return words, nil
}

// UpdateTerm implements [corpus.Store.UpdateTerm].
func (s *Store) UpdateTerm(ctx context.Context, id, term string) error {
	if term == "" {
		return errors.New("word term is required")
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE words SET term = ?, updated_at = ? WHERE id = ?`,
		term,
		toMillis(time.Now().UTC()),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating term: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating term: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", corpus.ErrNotFound, id)
	}
	return nil
}

// DeleteWord implements [corpus.Store.DeleteWord].
func (s *Store) DeleteWord(ctx context.Context, id string) error {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting word: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", corpus.ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWord(row scanner) (corpus.Word, error) {
	var w corpus.Word
	var createdAt, updatedAt int64
	if err := row.Scan(
		&w.ID,
		&w.Term,
		&w.Pronunciation,
		&w.PartOfSpeech,
		&w.Definition,
		&w.Notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		//nolint:wrapcheck // wrapped by the caller.
		return corpus.Word{}, err
	}
	w.CreatedAt = fromMillis(createdAt)
	w.UpdatedAt = fromMillis(updatedAt)
	return w, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
