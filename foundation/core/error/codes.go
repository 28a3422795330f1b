// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the interpreter pipeline and
//              its supporting infrastructure, with their categories and the
//              process exit status each one maps to.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced service codes with interpreter codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Structural (parse time)
	CodeUnmatchedClose Code = "UNMATCHED_CLOSE"
	CodeUnmatchedOpen  Code = "UNMATCHED_OPEN"

	// Runtime
	CodePointerOutOfRange Code = "POINTER_OUT_OF_RANGE"
	CodeInputExhausted    Code = "INPUT_EXHAUSTED"
	CodeIO                Code = "IO_ERROR"

	// Runaway policy
	CodeStepLimit Code = "STEP_LIMIT"
	CodeCancelled Code = "CANCELLED"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeStorage       Code = "STORAGE_ERROR"
)

// Exit statuses used by the CLI
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitStructural = 2
	ExitBounds     = 3
	ExitIO         = 4
	ExitLimit      = 5
	ExitConfig     = 6
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnmatchedClose, CodeUnmatchedOpen,
		CodePointerOutOfRange, CodeInputExhausted, CodeIO,
		CodeStepLimit, CodeCancelled,
		CodeConfigError, CodeInvalidConfig, CodeStorage:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnmatchedClose, CodeUnmatchedOpen:
		return "structural"
	case CodePointerOutOfRange:
		return "runtime"
	case CodeInputExhausted, CodeIO:
		return "io"
	case CodeStepLimit, CodeCancelled:
		return "limit"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorage:
		return "storage"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status for this error code
func (c Code) ExitStatus() int {
	switch c.Category() {
	case "structural":
		return ExitStructural
	case "runtime":
		return ExitBounds
	case "io":
		return ExitIO
	case "limit":
		return ExitLimit
	case "configuration":
		return ExitConfig
	default:
		return ExitFailure
	}
}
