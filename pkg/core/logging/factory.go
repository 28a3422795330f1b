// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	bfilog "github.com/msto63/bfi/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr, stdout belongs to the program)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Verbose forces the debug level
	Verbose bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *bfilog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose && level > bfilog.LevelDebug {
		level = bfilog.LevelDebug
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return bfilog.NewWithConfig(bfilog.Config{
		Level:        level,
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: level <= bfilog.LevelDebug,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *bfilog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to bfilog.Level, falling back to warn
func parseLevel(level string) bfilog.Level {
	if level == "" {
		return bfilog.LevelWarn
	}
	parsed, err := bfilog.ParseLevel(level)
	if err != nil {
		return bfilog.LevelWarn
	}
	return parsed
}

// parseFormat converts a string format to bfilog.Format, falling back to text
func parseFormat(format string) bfilog.Format {
	if format == "" {
		return bfilog.FormatText
	}
	parsed, err := bfilog.ParseFormat(format)
	if err != nil {
		return bfilog.FormatText
	}
	return parsed
}
