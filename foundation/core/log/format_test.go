// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Run ID and deterministic field order
// - 2026-10-19 v0.3.0: Component ahead of fields, ordered JSON keys

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	bfierror "github.com/msto63/bfi/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "program compiled")
	e.Timestamp = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	e.Logger = "bfi"
	e.RunID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	e.Fields["loops"] = 2
	e.Fields["instructions"] = 17
	e.Fields["component"] = "parser"
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !bfierror.HasCode(err, bfierror.CodeInvalidConfig) {
				t.Errorf("ParseFormat() error code = %s, want INVALID_CONFIG", bfierror.GetCode(err))
			}
			if !tt.wantErr && got.String() != strings.ToLower(tt.input) {
				t.Errorf("String() = %v", got.String())
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	data, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := map[string]interface{}{
		"level":        "info",
		"message":      "program compiled",
		"logger":       "bfi",
		"run_id":       "0f8fad5b-d9cb-469f-a165-70867728950e",
		"instructions": float64(17),
		"component":    "parser",
		"timestamp":    "2026-10-19T12:00:00Z",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestJSONFormatter_KeyOrder(t *testing.T) {
	data, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{"timestamp":"2026-10-19T12:00:00Z","level":"info","message":"program compiled",` +
		`"logger":"bfi","component":"parser","run_id":"0f8fad5b-d9cb-469f-a165-70867728950e",` +
		`"instructions":17,"loops":2}` + "\n"
	if string(data) != want {
		t.Errorf("Format() =\n%s\nwant\n%s", data, want)
	}
}

func TestJSONFormatter_ReservedFieldNames(t *testing.T) {
	e := testEntry()
	e.Fields["message"] = "shadow"
	e.Fields["level"] = "shadow"

	data, _ := NewJSONFormatter().Format(e)
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["message"] != "program compiled" || decoded["level"] != "info" {
		t.Errorf("fields must not replace entry attributes: %s", data)
	}
	if strings.Count(string(data), `"message"`) != 1 {
		t.Errorf("duplicate key in %s", data)
	}
}

func TestJSONFormatter_CodedError(t *testing.T) {
	e := testEntry()
	e.Error = bfierror.New("unmatched closing bracket").
		WithCode(bfierror.CodeUnmatchedClose).
		WithDetail("index", 4)

	data, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded struct {
		Error   string `json:"error"`
		Details struct {
			Code    string                 `json:"code"`
			Details map[string]interface{} `json:"details"`
		} `json:"error_details"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Details.Code != "UNMATCHED_CLOSE" {
		t.Errorf("error_details.code = %q", decoded.Details.Code)
	}
	if decoded.Details.Details["index"] != float64(4) {
		t.Errorf("error_details.details.index = %v", decoded.Details.Details["index"])
	}
}

func TestJSONFormatter_ErrorField(t *testing.T) {
	e := testEntry()
	e.Fields["cause"] = errors.New("EOF")

	data, _ := NewJSONFormatter().Format(e)
	if !strings.Contains(string(data), `"cause":"EOF"`) {
		t.Errorf("error fields should render as strings: %s", data)
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	data, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {bfi/parser} (run=0f8fad5b) program compiled [instructions=17 loops=2]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	data, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(data), "\x1b[") {
		t.Errorf("console output should start with the colored level tag: %q", data)
	}
	if !strings.Contains(string(data), "[INF]") || !strings.Contains(string(data), "program compiled") {
		t.Errorf("console output missing text: %q", data)
	}

	f.DisableColors = true
	data, _ = f.Format(testEntry())
	if strings.Contains(string(data), "\x1b[") {
		t.Error("DisableColors should strip escape codes")
	}
	plain, _ := f.TextFormatter.Format(testEntry())
	if string(data) != string(plain) {
		t.Errorf("uncolored console output = %q, want text format %q", data, plain)
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	e := testEntry()
	e.Duration = 1500 * time.Microsecond

	data, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	e.Fields["source"] = "hello world.b"

	want := `timestamp=2026-10-19T12:00:00Z level=info message="program compiled" logger=bfi component=parser ` +
		`run_id=0f8fad5b-d9cb-469f-a165-70867728950e instructions=17 loops=2 source="hello world.b" duration_ms=1.500` + "\n"
	if string(data) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", data, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(42), "*log.JSONFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := GetFormatter(tt.format)
			if name := typeName(got); name != tt.want {
				t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, name, tt.want)
			}
		})
	}
}

func typeName(f Formatter) string {
	switch f.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	default:
		return "?"
	}
}
