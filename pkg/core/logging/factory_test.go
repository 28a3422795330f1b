package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	bfilog "github.com/msto63/bfi/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected bfilog.Level
	}{
		{"trace", bfilog.LevelTrace},
		{"debug", bfilog.LevelDebug},
		{"info", bfilog.LevelInfo},
		{"warn", bfilog.LevelWarn},
		{"warning", bfilog.LevelWarn},
		{"error", bfilog.LevelError},
		{"fatal", bfilog.LevelFatal},
		{"", bfilog.LevelWarn},
		{"unknown", bfilog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected bfilog.Format
	}{
		{"json", bfilog.FormatJSON},
		{"text", bfilog.FormatText},
		{"console", bfilog.FormatConsole},
		{"logfmt", bfilog.FormatLogfmt},
		{"", bfilog.FormatText},
		{"xml", bfilog.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormat(tt.input); got != tt.expected {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("bfi")

	if cfg.Name != "bfi" {
		t.Errorf("Name = %q, want bfi", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:   "bfi",
		Level:  "info",
		Format: "json",
		Output: &buf,
	})

	logger.Debug("hidden")
	logger.Info("visible", bfilog.Fields{"steps": 3})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug entry should be filtered at info level")
	}
	if !strings.Contains(out, `"message":"visible"`) || !strings.Contains(out, `"steps":3`) {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestNewLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "error", Output: &buf, Verbose: true})

	if logger.GetLevel() != bfilog.LevelDebug {
		t.Errorf("Verbose logger level = %v, want debug", logger.GetLevel())
	}

	trace := NewLogger(LoggerConfig{Level: "trace", Output: &buf, Verbose: true})
	if trace.GetLevel() != bfilog.LevelTrace {
		t.Errorf("Verbose must not raise a lower level, got %v", trace.GetLevel())
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "warn",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Warn("tape nearly full")

	if !strings.Contains(primary.String(), "tape nearly full") {
		t.Errorf("Primary output missing entry: %q", primary.String())
	}
	if primary.String() != extra.String() {
		t.Errorf("Outputs differ: %q vs %q", primary.String(), extra.String())
	}
}
