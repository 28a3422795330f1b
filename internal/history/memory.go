// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     history
// Description: In-memory run history store for tests
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation for testing
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*Run
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make([]*Run, 0)}
}

// Record stores a run
func (s *MemoryStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalize(run)
	stored := *run
	s.runs = append(s.runs, &stored)
	return nil
}

// List returns runs matching filter, newest first
func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*Run
	for _, run := range s.runs {
		if filter.Status != "" && run.Status != filter.Status {
			continue
		}
		if filter.SourcePath != "" && run.SourcePath != filter.SourcePath {
			continue
		}
		if !filter.Since.IsZero() && run.StartedAt.Before(filter.Since) {
			continue
		}
		copied := *run
		results = append(results, &copied)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].StartedAt.After(results[j].StartedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(results) {
			return nil, nil
		}
		results = results[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(results) {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Stats returns aggregate statistics over all runs
func (s *MemoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{ByErrorCode: make(map[string]int64)}
	var total time.Duration
	for _, run := range s.runs {
		stats.TotalRuns++
		if run.Status == StatusOK {
			stats.Succeeded++
		}
		stats.TotalSteps += run.Steps
		total += run.Duration
		if run.ErrorCode != "" {
			stats.ByErrorCode[run.ErrorCode]++
		}
		if run.StartedAt.After(stats.LastRun) {
			stats.LastRun = run.StartedAt
		}
	}
	stats.Failed = stats.TotalRuns - stats.Succeeded
	if stats.TotalRuns > 0 {
		stats.AvgDuration = total / time.Duration(stats.TotalRuns)
	}
	return stats, nil
}

// Vacuum is a no-op for memory store
func (s *MemoryStore) Vacuum(ctx context.Context) error {
	return nil
}

// Prune removes old runs
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64

	kept := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		if run.StartedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, run)
	}
	s.runs = kept

	return deleted, nil
}

// Close is a no-op for memory store
func (s *MemoryStore) Close() error {
	return nil
}
