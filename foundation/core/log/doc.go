// Package log provides structured logging for bfi.
//
// Package: log
// Title: bfi Structured Logging Framework
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Loggers are immutable: every With* call returns
//              a configured copy, so a run can carry its own correlation ID
//              without affecting the logger it was derived from.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Run correlation IDs, deterministic field order, sync-only output
//
// Usage:
//
//	import bfilog "github.com/msto63/bfi/foundation/core/log"
//
//	logger := bfilog.New().
//		WithLevel(bfilog.LevelDebug).
//		WithFormat(bfilog.FormatText).
//		WithOutput(os.Stderr).
//		WithRunID(runID)
//
//	logger.Info("program compiled", bfilog.Fields{"instructions": 42})
//
//	timer := logger.StartTimer("execute")
//	// ... run the program
//	timer.Stop()
package log
