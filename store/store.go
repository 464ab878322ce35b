// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNotFound is returned when no assignment exists for an identity key.
var ErrNotFound = errors.New("assignment not found")

// ErrConflict is returned when an assignment for the identity key already
// exists. Callers should treat it as "someone else just created it" and
// re-read via FindByKey.
var ErrConflict = errors.New("assignment already exists")

// Assignment is the persisted identity→team pairing. Rows are created once
// and never updated or deleted.
type Assignment struct {
	ID          int64     `json:"id"`
	IdentityKey string    `json:"identity_key"`
	Team        string    `json:"team"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists assignments in the embedded SQLite database.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindByKey returns the assignment for an identity key, or ErrNotFound.
func (s *Store) FindByKey(ctx context.Context, identityKey string) (*Assignment, error) {
	var a Assignment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, identity_key, team, created_at
		FROM assignment
		WHERE identity_key = ?
	`, identityKey).Scan(&a.ID, &a.IdentityKey, &a.Team, &a.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}

	return &a, nil
}

// Create inserts a new assignment for the identity key. The key must be
// non-empty; the caller is responsible for trimming it and for picking the
// team from the configured roster. A concurrent insert for the same key
// loses to the UNIQUE constraint and surfaces as ErrConflict.
func (s *Store) Create(ctx context.Context, identityKey, team string) (*Assignment, error) {
	if identityKey == "" {
		return nil, errors.New("identity key is empty")
	}

	createdAt := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assignment (identity_key, team, created_at)
		VALUES (?, ?, ?)
	`, identityKey, team, createdAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to insert assignment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read assignment id: %w", err)
	}

	return &Assignment{
		ID:          id,
		IdentityKey: identityKey,
		Team:        team,
		CreatedAt:   createdAt,
	}, nil
}

// ListAll returns every assignment, most recently created first.
func (s *Store) ListAll(ctx context.Context) ([]Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, identity_key, team, created_at
		FROM assignment
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []Assignment{}
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.IdentityKey, &a.Team, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}

// CountByTeam returns per-team assignment counts, covering only teams that
// have at least one row. Callers fill in zero for absent teams.
func (s *Store) CountByTeam(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT team, COUNT(*)
		FROM assignment
		GROUP BY team
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var team string
		var count int
		if err := rows.Scan(&team, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[team] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counts: %w", err)
	}

	return counts, nil
}

// isUniqueViolation reports whether err is the driver's unique-constraint
// error for the identity_key column.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
