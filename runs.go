package msigdump

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run is one ledger entry: a scrape run and how it ended. LastError is nil
// for runs that completed.
type Run struct {
	RunID       uuid.UUID
	ListingURL  string
	OutputPath  string
	RecordCount int
	Skipped     int
	StartedAt   time.Time
	FinishedAt  time.Time
	LastError   *string
}

// RunStore keeps the scrape-run ledger in SQLite.
type RunStore struct {
	db *sql.DB
}

// NewRunStore opens (or creates) the ledger database at the given path.
func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &RunStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the runs table if it doesn't exist.
func (rs *RunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		listing_url TEXT NOT NULL,
		output_path TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		skipped INTEGER NOT NULL DEFAULT 0,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		last_error TEXT
	);
	`

	_, err := rs.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (rs *RunStore) Close() error {
	return rs.db.Close()
}

// RecordRun appends a run to the ledger, assigning its ID.
func (rs *RunStore) RecordRun(run *Run) error {
	run.RunID = uuid.New()

	query := `
		INSERT INTO runs (
			run_id, listing_url, output_path, record_count, skipped,
			started_at, finished_at, last_error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := rs.db.Exec(query,
		run.RunID.String(),
		run.ListingURL,
		run.OutputPath,
		run.RecordCount,
		run.Skipped,
		run.StartedAt.Format(time.RFC3339),
		run.FinishedAt.Format(time.RFC3339),
		run.LastError,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// ListRuns returns all runs, most recent first.
func (rs *RunStore) ListRuns() ([]Run, error) {
	query := `
		SELECT run_id, listing_url, output_path, record_count, skipped,
		       started_at, finished_at, last_error
		FROM runs
		ORDER BY started_at DESC, run_id
	`

	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var runIDStr, startedAtStr, finishedAtStr string
		var lastError sql.NullString

		err := rows.Scan(
			&runIDStr, &run.ListingURL, &run.OutputPath,
			&run.RecordCount, &run.Skipped,
			&startedAtStr, &finishedAtStr, &lastError,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.RunID, _ = uuid.Parse(runIDStr)
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		run.FinishedAt, _ = time.Parse(time.RFC3339, finishedAtStr)
		if lastError.Valid {
			run.LastError = &lastError.String
		}

		runs = append(runs, run)
	}

	return runs, rows.Err()
}
