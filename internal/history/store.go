// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps an optional SQLite log of conversion runs. It is
// only touched when the user points the CLI at a database path; a plain
// conversion run never opens it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunEntry is one logged conversion run.
type RunEntry struct {
	ID          int64
	Timestamp   time.Time
	Input       string
	Output      string
	Converted   int
	Unsupported int
	Skipped     int
}

// Store manages the run-log SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the run log at dbPath, creating parent
// directories and the schema as needed.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		converted INTEGER NOT NULL,
		unsupported INTEGER NOT NULL,
		skipped INTEGER NOT NULL
	)`)
	return err
}

// Record appends one run to the log.
func (s *Store) Record(ctx context.Context, e RunEntry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (timestamp, input, output, converted, unsupported, skipped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339), e.Input, e.Output, e.Converted, e.Unsupported, e.Skipped)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A limit of 0 means
// no limit.
func (s *Store) List(ctx context.Context, limit int) ([]RunEntry, error) {
	query := `SELECT id, timestamp, input, output, converted, unsupported, skipped
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Input, &e.Output, &e.Converted, &e.Unsupported, &e.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
