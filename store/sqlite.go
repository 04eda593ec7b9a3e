// Package store persists the entry list and spin history in SQLite.
// The entry list is saved wholesale, last write wins; no merging
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one row of the durable entry list
type Entry struct {
	Name    string
	Weight  float64
	Enabled bool
}

// SpinRecord is one settled run
type SpinRecord struct {
	ID         string
	Winner     string
	Total      time.Duration
	Decel      time.Duration
	FinishedAt time.Time
}

// Store wraps a single-connection SQLite database
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and ensures the schema
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		position INTEGER PRIMARY KEY,
		name     TEXT    NOT NULL,
		weight   REAL    NOT NULL,
		enabled  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS spins (
		id          TEXT PRIMARY KEY,
		winner      TEXT    NOT NULL,
		total_ms    INTEGER NOT NULL,
		decel_ms    INTEGER NOT NULL,
		finished_at TEXT    NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_spins_finished ON spins(finished_at)`,
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Entries loads the stored list in position order
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, weight, enabled FROM entries ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var enabled int
		if err := rows.Scan(&e.Name, &e.Weight, &enabled); err != nil {
			return nil, err
		}
		e.Enabled = enabled != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveEntries replaces the stored list wholesale
func (s *Store) SaveEntries(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (position, name, weight, enabled) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entries {
		enabled := 0
		if e.Enabled {
			enabled = 1
		}
		if _, err := stmt.Exec(i, e.Name, e.Weight, enabled); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RecordSpin appends one settled run and returns its generated id
func (s *Store) RecordSpin(winner string, total, decel time.Duration, finishedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO spins (id, winner, total_ms, decel_ms, finished_at) VALUES (?, ?, ?, ?, ?)`,
		id, winner, total.Milliseconds(), decel.Milliseconds(), finishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// History returns the most recent runs, newest first
func (s *Store) History(limit int) ([]SpinRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, winner, total_ms, decel_ms, finished_at FROM spins ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SpinRecord
	for rows.Next() {
		var r SpinRecord
		var totalMS, decelMS int64
		var finished string
		if err := rows.Scan(&r.ID, &r.Winner, &totalMS, &decelMS, &finished); err != nil {
			return nil, err
		}
		r.Total = time.Duration(totalMS) * time.Millisecond
		r.Decel = time.Duration(decelMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, finished); err == nil {
			r.FinishedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
