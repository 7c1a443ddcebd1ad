// Package store persists algorithms discovered by search runs, keyed by
// run id, using the pure-Go modernc.org/sqlite driver (no cgo, matching
// the rest of this repo's dependency-light build).
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is the sentinel error for a lookup that finds no matching row.
// ListSolutions and CountSolutions do not return it: an unknown run yields
// an empty list or a zero count.
var ErrNotFound = errors.New("store: not found")

// Solution is one discovered algorithm, scoped to the run that found it.
type Solution struct {
	RunID        string
	StartCFEN    string
	PatternCFEN  string
	Moves        string
	Depth        int
	DiscoveredAt time.Time
}

// Store wraps a sqlite-backed connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and ensures
// the schema exists. Pass ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS solutions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	start_cfen    TEXT NOT NULL,
	pattern_cfen  TEXT NOT NULL,
	moves         TEXT NOT NULL,
	depth         INTEGER NOT NULL,
	discovered_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solutions_run_id ON solutions(run_id);
`)
	if err != nil {
		return fmt.Errorf("store: migrating schema: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSolution inserts one discovered algorithm for a run.
func (s *Store) SaveSolution(sol Solution) error {
	_, err := s.db.Exec(
		`INSERT INTO solutions (run_id, start_cfen, pattern_cfen, moves, depth, discovered_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sol.RunID, sol.StartCFEN, sol.PatternCFEN, sol.Moves, sol.Depth, sol.DiscoveredAt,
	)
	if err != nil {
		return fmt.Errorf("store: saving solution for run %s: %w", sol.RunID, err)
	}
	return nil
}

// ListSolutions returns every solution recorded for a run, ordered by
// depth then discovery time, paged by limit/offset.
func (s *Store) ListSolutions(runID string, limit, offset int) ([]Solution, error) {
	rows, err := s.db.Query(
		`SELECT run_id, start_cfen, pattern_cfen, moves, depth, discovered_at
		 FROM solutions WHERE run_id = ? ORDER BY depth ASC, discovered_at ASC LIMIT ? OFFSET ?`,
		runID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("store: listing solutions for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Solution
	for rows.Next() {
		var sol Solution
		if err := rows.Scan(&sol.RunID, &sol.StartCFEN, &sol.PatternCFEN, &sol.Moves, &sol.Depth, &sol.DiscoveredAt); err != nil {
			return nil, fmt.Errorf("store: scanning solution row: %w", err)
		}
		out = append(out, sol)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating solutions for run %s: %w", runID, err)
	}
	return out, nil
}

// CountSolutions returns how many solutions have been recorded for a run.
func (s *Store) CountSolutions(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM solutions WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: counting solutions for run %s: %w", runID, err)
	}
	return n, nil
}
