// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     version
// Description: Central version information for the bfi binary
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Interpreter version
	Interpreter = "1.0.0"

	// History schema version
	HistorySchema = 1
)

// Set via -ldflags "-X github.com/msto63/bfi/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns a one-line version description
func String() string {
	return fmt.Sprintf("bfi %s (commit %s, built %s, %s %s/%s)",
		Interpreter, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
