// Package sqlite provides a SQLite-backed scoreboard storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS objectives (
	name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS entries (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	objective TEXT NOT NULL REFERENCES objectives(name),
	name      TEXT NOT NULL,
	score     INTEGER NOT NULL DEFAULT 0,
	UNIQUE (objective, name)
);`

// Storage persists scoreboard state in SQLite.
// Entries list in the order they were first set.
type Storage struct {
	sqlDB *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens a SQLite store and creates the schema if needed.
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Storage{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Storage) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Storage) EnsureObjective(ctx context.Context, name string) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO objectives (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("insert objective: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert objective: %w", err)
	}
	if n == 0 {
		return model.ErrObjectiveExists
	}
	return nil
}

func (s *Storage) SetEntry(ctx context.Context, objective, entry string) error {
	if err := s.requireObjective(ctx, objective); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO entries (objective, name, score) VALUES (?, ?, 0)
		 ON CONFLICT (objective, name) DO UPDATE SET score = excluded.score`,
		objective, entry)
	if err != nil {
		return fmt.Errorf("set entry: %w", err)
	}
	return nil
}

func (s *Storage) ResetEntry(ctx context.Context, objective, entry string) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM entries WHERE objective = ? AND name = ?`, objective, entry)
	if err != nil {
		return fmt.Errorf("reset entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reset entry: %w", err)
	}
	if n == 0 {
		return model.ErrEntryNotFound
	}
	return nil
}

func (s *Storage) ListEntries(ctx context.Context, objective string) ([]string, error) {
	if err := s.requireObjective(ctx, objective); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name FROM entries WHERE objective = ? ORDER BY id`, objective)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *Storage) requireObjective(ctx context.Context, objective string) error {
	var name string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT name FROM objectives WHERE name = ?`, objective).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrObjectiveNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup objective: %w", err)
	}
	return nil
}
