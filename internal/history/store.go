// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     history
// Description: Persistent record of interpreter runs
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Status is the outcome of a run
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run is one recorded interpreter run
type Run struct {
	ID          string        `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	SourcePath  string        `json:"source_path"`
	SourceHash  string        `json:"source_hash"`
	Status      Status        `json:"status"`
	ErrorCode   string        `json:"error_code,omitempty"`
	Steps       int64         `json:"steps"`
	OutputBytes int64         `json:"output_bytes"`
	Duration    time.Duration `json:"duration"`
}

// Filter defines criteria for listing runs
type Filter struct {
	Status     Status
	SourcePath string
	Since      time.Time
	Limit      int
	Offset     int
}

// Stats summarizes the recorded runs
type Stats struct {
	TotalRuns   int64            `json:"total_runs"`
	Succeeded   int64            `json:"succeeded"`
	Failed      int64            `json:"failed"`
	TotalSteps  int64            `json:"total_steps"`
	AvgDuration time.Duration    `json:"avg_duration"`
	ByErrorCode map[string]int64 `json:"by_error_code"`
	LastRun     time.Time        `json:"last_run,omitempty"`
}

// Store defines the interface for run persistence
type Store interface {
	Record(ctx context.Context, run *Run) error
	List(ctx context.Context, filter Filter) ([]*Run, error)
	Stats(ctx context.Context) (*Stats, error)

	// Maintenance
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Vacuum(ctx context.Context) error
	Close() error
}

// HashSource returns the hex SHA-256 of a program source
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
