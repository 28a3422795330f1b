// Package error provides the coded error type shared by every bfi component.
//
// Package: error
// Title: bfi Error Handling Framework
// Description: Structured errors with a stable code, a severity, free-form
//              details and an optional cause. Interpreter stages report their
//              failures through this type so the CLI can render a diagnostic
//              and pick a process exit status without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Interpreter codes, categories and exit statuses
//
// Usage:
//
//	import bfierror "github.com/msto63/bfi/foundation/core/error"
//
//	err := bfierror.New("pointer moved outside the tape").
//		WithCode(bfierror.CodePointerOutOfRange).
//		WithDetail("pointer", -1)
//
//	if bfierror.HasCode(err, bfierror.CodePointerOutOfRange) {
//		os.Exit(bfierror.ExitCode(err))
//	}
package error
