package sink

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"edgeneuro/internal/domain"
)

// SQLiteSink stores datasets in a SQLite database so generated runs can be
// inspected with plain SQL. Each run gets a row in the runs table and its
// records are keyed by run ID, so successive runs accumulate instead of
// overwriting each other.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (or creates) a SQLite database at dbPath and runs the
// schema migration.
func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open dataset db: %w", err)
	}
	// WAL mode for better concurrent reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate dataset db: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id           TEXT PRIMARY KEY,
			record_count INTEGER NOT NULL,
			created_at   TEXT NOT NULL
		)
	`); err != nil {
		return err
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			run_id      TEXT NOT NULL REFERENCES runs(id),
			seq         INTEGER NOT NULL,
			instruction TEXT NOT NULL,
			input       TEXT NOT NULL,
			output      TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		)
	`)
	return err
}

// Write stores records under runID in a single transaction and returns the
// number written. A failed run leaves no partial rows behind.
func (s *SQLiteSink) Write(ctx context.Context, runID string, records []domain.TrainingRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, record_count, created_at) VALUES (?, ?, ?)",
		runID, len(records), now); err != nil {
		return 0, fmt.Errorf("insert run %s: %w", runID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO records (run_id, seq, instruction, input, output) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, runID, i, rec.Instruction, rec.Input, rec.Output); err != nil {
			return 0, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(records), nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
