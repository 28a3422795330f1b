// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     history
// Description: SQLite implementation of the run history store
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// NewSQLiteStore opens or creates the history database
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageError(err, "failed to create directory").WithDetail("path", dir)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, storageError(err, "failed to open database").WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize schema").WithDetail("path", cfg.Path)
	}

	return store, nil
}

func storageError(err error, message string) *bfierror.Error {
	return bfierror.Wrap(err, message).WithCode(bfierror.CodeStorage)
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		source_path TEXT NOT NULL,
		source_hash TEXT NOT NULL,
		status TEXT NOT NULL,
		error_code TEXT NOT NULL DEFAULT '',
		steps INTEGER NOT NULL,
		output_bytes INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_source_path ON runs(source_path);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run. Missing IDs and start times are filled in.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalize(run)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, source_path, source_hash, status, error_code, steps, output_bytes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.SourcePath, run.SourceHash, string(run.Status), run.ErrorCode,
		run.Steps, run.OutputBytes, run.Duration.Milliseconds())

	if err != nil {
		return storageError(err, "failed to insert run").WithDetail("run_id", run.ID)
	}
	return nil
}

// List returns runs matching filter, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, started_at, source_path, source_hash, status, error_code, steps, output_bytes, duration_ms FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.SourcePath != "" {
		query += " AND source_path = ?"
		args = append(args, filter.SourcePath)
	}
	if !filter.Since.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to query runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var status string
		var durationMS int64

		if err := rows.Scan(&run.ID, &run.StartedAt, &run.SourcePath, &run.SourceHash, &status,
			&run.ErrorCode, &run.Steps, &run.OutputBytes, &durationMS); err != nil {
			return nil, storageError(err, "failed to scan run")
		}
		run.Status = Status(status)
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read runs")
	}

	return runs, nil
}

// Stats returns aggregate statistics over all runs
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{ByErrorCode: make(map[string]int64)}

	var avgMS float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'ok' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(steps), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM runs
	`).Scan(&stats.TotalRuns, &stats.Succeeded, &stats.TotalSteps, &avgMS)
	if err != nil {
		return nil, storageError(err, "failed to aggregate runs")
	}
	stats.Failed = stats.TotalRuns - stats.Succeeded
	stats.AvgDuration = time.Duration(avgMS * float64(time.Millisecond))

	rows, err := s.db.QueryContext(ctx,
		`SELECT error_code, COUNT(*) FROM runs WHERE error_code != '' GROUP BY error_code`)
	if err != nil {
		return nil, storageError(err, "failed to group runs")
	}
	err = collectErrorCodes(rows, stats.ByErrorCode)
	rows.Close()
	if err != nil {
		return nil, err
	}

	var last time.Time
	err = s.db.QueryRowContext(ctx,
		`SELECT started_at FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, storageError(err, "failed to read last run")
	default:
		stats.LastRun = last
	}

	return stats, nil
}

// Vacuum optimizes the database
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return storageError(err, "failed to vacuum")
	}
	return nil
}

// Prune removes runs older than the specified duration
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune runs")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// normalize fills in defaults before a run is stored
// rowScanner is the part of *sql.Rows used to read grouped counts
type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// collectErrorCodes reads (error_code, count) rows into counts
func collectErrorCodes(rows rowScanner, counts map[string]int64) error {
	for rows.Next() {
		var code string
		var count int64
		if err := rows.Scan(&code, &count); err != nil {
			return storageError(err, "failed to scan error codes")
		}
		counts[code] = count
	}
	if err := rows.Err(); err != nil {
		return storageError(err, "failed to read error codes")
	}
	return nil
}

func normalize(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	run.StartedAt = run.StartedAt.UTC()
	if run.Status == "" {
		run.Status = StatusOK
	}
}
