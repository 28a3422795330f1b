// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     health
// Description: Diagnostic checks of the local installation
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status is the outcome of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult is the result of one check
type CheckResult struct {
	Name     string                 `json:"name"`
	Status   Status                 `json:"status"`
	Message  string                 `json:"message"`
	Duration time.Duration          `json:"duration"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Checker runs one diagnostic check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedChecker{name: name, fn: fn}
}

func (c *namedChecker) Name() string {
	return c.name
}

func (c *namedChecker) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Healthy, Degraded and Unhealthy build results with a formatted message
func Healthy(format string, args ...interface{}) CheckResult {
	return CheckResult{Status: StatusHealthy, Message: fmt.Sprintf(format, args...)}
}

func Degraded(format string, args ...interface{}) CheckResult {
	return CheckResult{Status: StatusDegraded, Message: fmt.Sprintf(format, args...)}
}

func Unhealthy(format string, args ...interface{}) CheckResult {
	return CheckResult{Status: StatusUnhealthy, Message: fmt.Sprintf(format, args...)}
}

// Registry holds the checks of a diagnostic run
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	version  string
}

// NewRegistry creates an empty registry
func NewRegistry(version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		version:  version,
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Check runs all checks concurrently. Results are sorted by name.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	report := &Report{
		Version:   r.version,
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, len(checkers)),
	}

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			if result.Name == "" {
				result.Name = c.Name()
			}
			if result.Status == "" {
				result.Status = StatusHealthy
			}
			report.Checks[i] = result
		}(i, checker)
	}
	wg.Wait()

	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})

	report.Status = StatusHealthy
	for _, result := range report.Checks {
		switch result.Status {
		case StatusUnhealthy:
			report.Status = StatusUnhealthy
		case StatusDegraded:
			if report.Status != StatusUnhealthy {
				report.Status = StatusDegraded
			}
		}
	}
	return report
}

// Report is the overall result of a diagnostic run
type Report struct {
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("bfi %s: %s (%d checks)", r.Version, r.Status, len(r.Checks))
}
