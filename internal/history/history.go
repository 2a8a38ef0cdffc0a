// Package history records past extraction runs in a SQLite database so
// earlier results can be reviewed without re-running the pipeline.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run records one extraction over one paper.
type Run struct {
	ID        int64     `json:"id"`
	Paper     string    `json:"paper"`
	Query     string    `json:"query"`
	Provider  string    `json:"provider,omitempty"`
	Model     string    `json:"model,omitempty"`
	Cited     int       `json:"cited"`    // ids found in the section
	Resolved  int       `json:"resolved"` // ids with a bibliography entry
	Missing   int       `json:"missing"`  // ids reported not found
	CreatedAt time.Time `json:"created_at"`
}

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			paper TEXT NOT NULL,
			query TEXT NOT NULL,
			provider TEXT,
			model TEXT,
			cited INTEGER NOT NULL,
			resolved INTEGER NOT NULL,
			missing INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Record stores a run and returns it with its assigned id.
func (d *DB) Record(run Run) (Run, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	result, err := d.db.Exec(
		`INSERT INTO runs (paper, query, provider, model, cited, resolved, missing, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Paper, run.Query, run.Provider, run.Model,
		run.Cited, run.Resolved, run.Missing, run.CreatedAt.Unix(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}

	run.ID, err = result.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("reading run id: %w", err)
	}

	return run, nil
}

// Recent returns the most recent runs, newest first.
func (d *DB) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := d.db.Query(
		`SELECT id, paper, query, provider, model, cited, resolved, missing, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(&run.ID, &run.Paper, &run.Query, &run.Provider, &run.Model,
			&run.Cited, &run.Resolved, &run.Missing, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
