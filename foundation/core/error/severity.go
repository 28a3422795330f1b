// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              choose the level at which an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for interpreter codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a failure of the interpreted program itself
	// (unbalanced brackets, pointer leaving the tape)
	SeverityLow Severity = iota

	// SeverityMedium is the default for uncategorized errors
	SeverityMedium

	// SeverityHigh is a failure of the environment (I/O, storage, config)
	SeverityHigh

	// SeverityCritical is an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIO, CodeStorage, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeUnmatchedClose, CodeUnmatchedOpen, CodePointerOutOfRange,
		CodeInputExhausted, CodeStepLimit, CodeCancelled,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
