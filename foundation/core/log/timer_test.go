// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer completion and failure logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Entry durations

package log

import (
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.WithRunID("r").StartTimer("execute").WithField("steps", 12)

	if !timer.IsRunning() {
		t.Error("new timer should be running")
	}

	elapsed := timer.Stop()
	if elapsed < 0 {
		t.Errorf("elapsed = %v", elapsed)
	}
	if timer.IsRunning() {
		t.Error("stopped timer should not be running")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["message"] != "execute completed" {
		t.Errorf("message = %v", line["message"])
	}
	if line["operation"] != "execute" || line["steps"] != float64(12) || line["run_id"] != "r" {
		t.Errorf("unexpected fields: %v", line)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	logger.StartTimer("execute").StopWithError(errors.New("input exhausted"))

	lines := decodeLines(t, buf)
	if lines[0]["level"] != "warn" {
		t.Errorf("level = %v", lines[0]["level"])
	}
	if lines[0]["error"] != "input exhausted" || lines[0]["success"] != false {
		t.Errorf("unexpected fields: %v", lines[0])
	}
}

func TestTimerBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("compile").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info: %s", buf.String())
	}
}
