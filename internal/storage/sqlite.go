// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded simulation run.
type RunEntry struct {
	ID         int64
	ScenarioID string
	Ticks      int     // Ticks simulated
	Bodies     int     // Bodies in the world at the end of the run
	WallMS     int64   // Wall-clock duration in milliseconds
	Drift      float64 // Relative momentum drift over the run
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			bodies INTEGER NOT NULL,
			wall_ms INTEGER NOT NULL DEFAULT 0,
			drift REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(scenario_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scenario_id, ticks, bodies, wall_ms, drift) VALUES (?, ?, ?, ?, ?)",
		run.ScenarioID, run.Ticks, run.Bodies, run.WallMS, run.Drift,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty
// scenarioID returns runs across all scenarios.
func (s *Store) RecentRuns(scenarioID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scenario_id, ticks, bodies, wall_ms, drift, created_at
		 FROM runs`
	args := []any{}
	if scenarioID != "" {
		query += " WHERE scenario_id = ?"
		args = append(args, scenarioID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScenarioID, &e.Ticks, &e.Bodies, &e.WallMS, &e.Drift, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LongestRun returns the highest tick count recorded for the given scenario.
// Returns 0 if no runs exist.
func (s *Store) LongestRun(scenarioID string) (int, error) {
	var ticks sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(ticks) FROM runs WHERE scenario_id = ?",
		scenarioID,
	).Scan(&ticks)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}

	if !ticks.Valid {
		return 0, nil
	}

	return int(ticks.Int64), nil
}

// BestRun returns the recorded run with the lowest momentum drift for the
// given scenario. The boolean reports whether any run exists.
func (s *Store) BestRun(scenarioID string) (RunEntry, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, scenario_id, ticks, bodies, wall_ms, drift, created_at
		 FROM runs WHERE scenario_id = ? ORDER BY drift ASC, created_at DESC LIMIT 1`,
		scenarioID,
	)

	var e RunEntry
	var createdAt any
	if err := row.Scan(&e.ID, &e.ScenarioID, &e.Ticks, &e.Bodies, &e.WallMS, &e.Drift, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RunEntry{}, false, nil
		}
		return RunEntry{}, false, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)

	return e, true, nil
}

// ClearRuns deletes all runs for the given scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the driver returning datetimes as either time.Time or
// string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
