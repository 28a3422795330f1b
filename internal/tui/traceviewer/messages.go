// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Message types for async operations in the trace viewer
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package traceviewer

import (
	"github.com/msto63/bfi/foundation/bf/executor"
)

// Trace is the outcome of a traced run
type Trace struct {
	Frames    []executor.Frame
	Total     int64
	Truncated bool
	Output    []byte
	Err       error
}

// traceLoadedMsg is sent when the traced run has finished
type traceLoadedMsg struct {
	trace Trace
}
