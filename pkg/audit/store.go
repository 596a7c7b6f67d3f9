// Package audit persists sanitization run summaries to a local SQLite
// database so users can review what was redacted and when. Redaction never
// depends on it; recording failures only cost the audit trail.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/santaclaude2025/scrub/pkg/config"
	"github.com/santaclaude2025/scrub/pkg/sanitizer"
)

const dbFileName = "audit.db"

// Store wraps the SQLite database connection
type Store struct {
	conn *sql.DB
	path string
}

// Run is one recorded sanitization run.
type Run struct {
	RunID     string
	Timestamp time.Time
	Source    string
	Total     int
	Summary   string
}

// RunMatch is one redaction recorded for a run. Original values are never
// stored, only positions and redacted forms.
type RunMatch struct {
	Category sanitizer.Category
	Line     int
	Redacted string
}

// Open opens or creates the audit database in the scrub state directory.
func Open() (*Store, error) {
	dir := config.Dir()
	if dir == "" {
		return nil, fmt.Errorf("could not determine state directory")
	}
	return OpenPath(filepath.Join(dir, dbFileName))
}

// OpenPath opens or creates the audit database at an explicit path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := &Store{
		conn: conn,
		path: path,
	}

	if err := st.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return st, nil
}

// Close closes the database connection
func (st *Store) Close() error {
	return st.conn.Close()
}

// Path returns the database file path
func (st *Store) Path() string {
	return st.path
}

// initSchema creates tables if they don't exist
func (st *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		total INTEGER NOT NULL,
		summary TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_matches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		category TEXT NOT NULL,
		line INTEGER NOT NULL,
		redacted TEXT NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(run_id)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	CREATE INDEX IF NOT EXISTS idx_run_matches_run ON run_matches(run_id);
	`

	if _, err := st.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// RecordRun stores a run summary and its matches, returning the run ID.
func (st *Store) RecordRun(source string, report sanitizer.Report) (string, error) {
	tx, err := st.conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()

	runSQL := `
		INSERT INTO runs (run_id, timestamp, source, total, summary)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(runSQL, runID, time.Now(), source, report.Total, report.ToText())
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	matchSQL := `
		INSERT INTO run_matches (run_id, category, line, redacted)
		VALUES (?, ?, ?, ?)
	`
	for _, m := range report.Matches {
		_, err = tx.Exec(matchSQL, runID, string(m.Category), m.Line, m.Redacted)
		if err != nil {
			return "", fmt.Errorf("failed to insert match: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (st *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, timestamp, source, total, summary
		FROM runs
		ORDER BY timestamp DESC
		LIMIT ?
	`
	rows, err := st.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RunID, &run.Timestamp, &run.Source, &run.Total, &run.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// RunMatches returns the matches recorded for one run in insertion order.
func (st *Store) RunMatches(runID string) ([]RunMatch, error) {
	query := `
		SELECT category, line, redacted
		FROM run_matches
		WHERE run_id = ?
		ORDER BY id
	`
	rows, err := st.conn.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []RunMatch
	for rows.Next() {
		var m RunMatch
		var category string
		if err := rows.Scan(&category, &m.Line, &m.Redacted); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Category = sanitizer.Category(category)
		matches = append(matches, m)
	}

	return matches, rows.Err()
}
