// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNotFound is returned when an entry does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = errors.New("history entry not found")

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one persisted conversion.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
}

// =============================================================================
// STORE
// =============================================================================

// Store is the sqlite-backed conversion history. It is an explicit
// collaborator handed to whoever needs it, never package state.
type Store struct {
	db *sql.DB

	// MaxEntries prunes the oldest rows past this count on Append (0 = unlimited).
	MaxEntries int
}

// Open opens (creating if needed) the history database at path.
func Open(path string, maxEntries int) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, MaxEntries: maxEntries}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// APPEND
// =============================================================================

// Append records a conversion and returns the stored entry.
func (s *Store) Append(kind, input, output string) (Entry, error) {
	e := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Kind:      kind,
		Input:     input,
		Output:    output,
	}

	_, err := s.db.Exec(
		"INSERT INTO entries (id, created_at, kind, input, output) VALUES (?, ?, ?, ?, ?)",
		e.ID, e.Timestamp.Unix(), e.Kind, e.Input, e.Output,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to append history entry: %w", err)
	}

	if s.MaxEntries > 0 {
		s.enforceLimit()
	}

	return e, nil
}

// Record satisfies convert.Recorder so a *Store can be injected into a
// conversion session directly.
func (s *Store) Record(kind, input, output string) error {
	_, err := s.Append(kind, input, output)
	return err
}

// enforceLimit drops the oldest rows past MaxEntries. Best effort: a failed
// prune never fails the append that triggered it.
func (s *Store) enforceLimit() {
	_, _ = s.db.Exec(`
		DELETE FROM entries WHERE id IN (
			SELECT id FROM entries ORDER BY created_at DESC, rowid DESC LIMIT -1 OFFSET ?
		)`, s.MaxEntries)
}

// =============================================================================
// READ
// =============================================================================

// List returns entries newest first. limit <= 0 returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := s.db.Query(
		"SELECT id, created_at, kind, input, output FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose kind, input, or output contains q
// (case-insensitive), newest first.
func (s *Store) Search(q string) ([]Entry, error) {
	pattern := "%" + q + "%"
	rows, err := s.db.Query(`
		SELECT id, created_at, kind, input, output FROM entries
		WHERE kind LIKE ? OR input LIKE ? OR output LIKE ?
		ORDER BY created_at DESC, rowid DESC`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, error) {
	row := s.db.QueryRow(
		"SELECT id, created_at, kind, input, output FROM entries WHERE id = ?", id,
	)
	var e Entry
	var ts int64
	if err := row.Scan(&e.ID, &ts, &e.Kind, &e.Input, &e.Output); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("failed to load history entry: %w", err)
	}
	e.Timestamp = time.Unix(ts, 0)
	return e, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Kind, &e.Input, &e.Output); err != nil {
			return nil, err
		}
		e.Timestamp = time.Unix(ts, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

// =============================================================================
// DELETE
// =============================================================================

// Delete removes the entry with the given id.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByIndex removes the entry at the given position in List order
// (0 = most recent). The index is resolved to an id first so a concurrent
// append cannot shift the target.
func (s *Store) DeleteByIndex(index int) (Entry, error) {
	if index < 0 {
		return Entry{}, ErrNotFound
	}
	entries, err := s.List(0)
	if err != nil {
		return Entry{}, err
	}
	if index >= len(entries) {
		return Entry{}, ErrNotFound
	}
	e := entries[index]
	if err := s.Delete(e.ID); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
