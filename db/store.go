// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/live-survey/survey"
)

var ErrCorruptStore = errors.New("corrupt survey store")

// Store persists the survey between runs.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the saved entries in index order. An empty table is an
// empty survey. Rows that cannot form a valid survey yield ErrCorruptStore;
// any other error means the store could not be read.
func (s *Store) Load(ctx context.Context) ([]survey.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, name, votes FROM survey_entry ORDER BY idx
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []survey.Entry
	seen := make(map[string]bool)
	for rows.Next() {
		var idx int
		var e survey.Entry
		if err := rows.Scan(&idx, &e.Name, &e.Votes); err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", ErrCorruptStore, err)
		}
		if idx != len(entries) {
			return nil, fmt.Errorf("%w: expected index %d, found %d", ErrCorruptStore, len(entries), idx)
		}
		if err := survey.CheckName(e.Name); err != nil {
			return nil, fmt.Errorf("%w: index %d: %v", ErrCorruptStore, idx, err)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrCorruptStore, e.Name)
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// Restore loads the saved survey for a new run. A corrupt store is an
// error. Any other load failure returns a nil Store: the run starts empty
// without persistence, so the rows it could not read are never replaced.
func Restore(ctx context.Context, s *Store) (*Store, []survey.Entry, error) {
	entries, err := s.Load(ctx)
	if errors.Is(err, ErrCorruptStore) {
		return nil, nil, err
	}
	if err != nil {
		slog.Warn("failed to load survey, running without persistence", "error", err)
		return nil, nil, nil
	}
	return s, entries, nil
}

// Save replaces the stored survey with entries in a single transaction.
func (s *Store) Save(ctx context.Context, entries []survey.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM survey_entry`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	for i, e := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO survey_entry (idx, name, votes)
			VALUES ($1, $2, $3)
		`, i, e.Name, e.Votes)
		if err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
