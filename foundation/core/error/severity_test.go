// File: severity_test.go
// Title: Severity Tests
// Description: Tests for severity names and the code to severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Interpreter codes

package error

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnmatchedOpen, SeverityLow},
		{CodePointerOutOfRange, SeverityLow},
		{CodeIO, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(New("x").WithCode(CodeStorage)); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v", got)
	}
	if got := GetSeverity(codedError{code: CodeUnmatchedClose}); got != SeverityLow {
		t.Errorf("GetSeverity() via Coder = %v", got)
	}
}
