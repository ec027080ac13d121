// Package store persists solve records to SQLite. It is a pure collaborator:
// the solver never reads from or writes to it, and nothing here participates
// in solving a cube. CLI and HTTP callers opt in to recording a row after a
// solve completes.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/0001_init.sql
var migration0001 string

var migrations = []struct {
	version int
	sql     string
}{
	{1, migration0001},
}

// DB wraps a SQLite connection holding solve history.
type DB struct {
	*sql.DB
	path string
}

// Open opens (creating if necessary) the SQLite database at path and brings
// its schema up to date.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory for %s: %w", path, err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

func (db *DB) migrate() error {
	current, err := db.currentVersion()
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("store: apply migration %d: %w", m.version, err)
		}
	}
	return nil
}

func (db *DB) currentVersion() (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("store: check schema_version table: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var version int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("store: read schema version: %w", err)
	}
	return version, nil
}

// Solve is one recorded solve.
type Solve struct {
	SolveID    string
	Scramble   string
	Algorithm  string
	Evaluator  string
	Solution   string
	MoveCount  int
	CostMillis int64
	CreatedAt  time.Time
}

// Record inserts a new solve row and returns its generated ID.
func (db *DB) Record(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := db.Exec(`
		INSERT INTO solves (solve_id, scramble, algorithm, evaluator, solution, move_count, cost_millis, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, s.Scramble, s.Algorithm, s.Evaluator, s.Solution, s.MoveCount, s.CostMillis, createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("store: record solve: %w", err)
	}
	return id, nil
}

// List returns the most recent solves, newest first, capped at limit.
func (db *DB) List(limit int) ([]Solve, error) {
	rows, err := db.Query(`
		SELECT solve_id, scramble, algorithm, evaluator, solution, move_count, cost_millis, created_at
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		var s Solve
		var createdAt string
		if err := rows.Scan(&s.SolveID, &s.Scramble, &s.Algorithm, &s.Evaluator, &s.Solution, &s.MoveCount, &s.CostMillis, &createdAt); err != nil {
			return nil, fmt.Errorf("store: scan solve: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, s)
	}
	return out, rows.Err()
}
