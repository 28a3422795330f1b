// File: level.go
// Title: Log Level Definitions
// Description: Log levels with their names, short tags and console colors,
//              kept in one table.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Dropped the audit level
// - 2026-10-19 v0.3.0: Level table; parse errors are coded config errors

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is per-instruction detail; only useful while debugging the interpreter
	LevelTrace Level = iota

	// LevelDebug covers compile and run lifecycle details
	LevelDebug

	// LevelInfo reports completed runs
	LevelInfo

	// LevelWarn marks a failed run or a degraded component (e.g. history unavailable)
	LevelWarn

	// LevelError is for failures of the interpreter itself
	LevelError

	// LevelFatal terminates the process after logging
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	aliases []string
	color   lipgloss.Color
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", nil, "#94A3B8"},
	LevelDebug: {"debug", "DBG", nil, "#06B6D4"},
	LevelInfo:  {"info", "INF", []string{"information"}, "#10B981"},
	LevelWarn:  {"warn", "WRN", []string{"warning"}, "#F59E0B"},
	LevelError: {"error", "ERR", nil, "#EF4444"},
	LevelFatal: {"fatal", "FTL", nil, "#D946EF"},
}

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || int(l) >= len(levels) {
		return levelInfo{name: "unknown", short: "???"}, false
	}
	return levels[l], true
}

// String returns the lower-case level name used in config files
func (l Level) String() string {
	info, _ := l.info()
	return info.name
}

// ShortString returns the three-letter tag used by text output
func (l Level) ShortString() string {
	info, _ := l.info()
	return info.short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name, its short tag or an alias. Unknown
// names return LevelInfo and an INVALID_CONFIG error.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, info := range levels {
		if s == info.name || s == strings.ToLower(info.short) {
			return Level(i), nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, invalidSetting("level", level)
}

func invalidSetting(kind, value string) error {
	return bfierror.Newf("invalid log %s: %q", kind, value).
		WithCode(bfierror.CodeInvalidConfig).
		WithDetail("value", value)
}

// DefaultLevel returns the level of loggers created without configuration
func DefaultLevel() Level {
	return LevelInfo
}
