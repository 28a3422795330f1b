// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, ordering and parsing.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Audit level removed
// - 2026-10-19 v0.3.0: Coded parse errors

package log

import (
	"testing"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
		{Level(-1), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %v, want %v", got, tt.short)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		min   Level
		want  bool
	}{
		{"equal", LevelInfo, LevelInfo, true},
		{"above", LevelError, LevelInfo, true},
		{"below", LevelDebug, LevelInfo, false},
		{"trace at trace", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.min); got != tt.want {
				t.Errorf("ShouldLog() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"trc", LevelTrace, false},
		{"FTL", LevelFatal, false},
		{"information", LevelInfo, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel_Error(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil || err.Error() != `invalid log level: "loud"` {
		t.Errorf("error = %v", err)
	}
	if !bfierror.HasCode(err, bfierror.CodeInvalidConfig) {
		t.Errorf("code = %s, want INVALID_CONFIG", bfierror.GetCode(err))
	}
}

func TestLevelNamesRoundTrip(t *testing.T) {
	for l := LevelTrace; l <= LevelFatal; l++ {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
}
