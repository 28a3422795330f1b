// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log messages: JSON, plain text, colored
//              console and logfmt. All formats emit the logger name, the
//              component and the run ID ahead of the remaining fields, which
//              follow in key order.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Sorted fields, run ID, coded error details
// - 2026-10-19 v0.3.0: Shared attribute order, ordered JSON, lipgloss console colors

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored text for terminals
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the name used in config files
func (f Format) String() string {
	if f < FormatJSON || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name. Unknown names return FormatJSON and an
// INVALID_CONFIG error.
func ParseFormat(format string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(format))
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return FormatJSON, invalidSetting("format", format)
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Well-known attribute keys
const (
	KeyLogger    = "logger"
	KeyComponent = "component"
	KeyRunID     = "run_id"
)

// attr is one key/value of an entry in output order
type attr struct {
	key   string
	value interface{}
}

// attrs returns logger, component and run ID followed by the remaining
// fields in key order
func (e *Entry) attrs() []attr {
	out := make([]attr, 0, len(e.Fields)+3)
	if e.Logger != "" {
		out = append(out, attr{KeyLogger, e.Logger})
	}
	if c, ok := e.Fields[KeyComponent]; ok {
		out = append(out, attr{KeyComponent, c})
	}
	if e.RunID != "" {
		out = append(out, attr{KeyRunID, e.RunID})
	}
	for _, k := range e.Fields.Keys() {
		if k == KeyComponent || k == KeyRunID || k == KeyLogger {
			continue
		}
		v := e.Fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out = append(out, attr{k, v})
	}
	return out
}

func durationMS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// JSONFormatter formats log entries as JSON objects with a fixed key order
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// jsonObject writes the members of one JSON object in call order
type jsonObject struct {
	buf  bytes.Buffer
	seen map[string]bool
	err  error
}

func (o *jsonObject) add(key string, value interface{}) {
	if o.err != nil || o.seen[key] {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		o.err = err
		return
	}
	o.addRaw(key, raw)
}

func (o *jsonObject) addRaw(key string, raw []byte) {
	if o.seen == nil {
		o.seen = make(map[string]bool)
	}
	o.seen[key] = true
	if o.buf.Len() > 0 {
		o.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(raw)
}

// Format formats a log entry as one line of JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	var obj jsonObject
	obj.add("timestamp", entry.Timestamp.Format(f.TimestampFormat))
	obj.add("level", entry.Level.String())
	obj.add("message", entry.Message)

	for _, a := range entry.attrs() {
		obj.add(a.key, a.value)
	}

	if entry.Error != nil {
		obj.add("error", entry.Error.Error())
		// coded errors contribute their structured form
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				obj.addRaw("error_details", raw)
			}
		}
	}
	if entry.Caller != nil {
		obj.add("caller", fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line))
	}
	if entry.Duration > 0 {
		obj.add("duration_ms", durationMS(entry.Duration))
	}

	if obj.err != nil {
		return nil, obj.err
	}
	out := make([]byte, 0, obj.buf.Len()+3)
	out = append(out, '{')
	out = append(out, obj.buf.Bytes()...)
	return append(out, '}', '\n'), nil
}

// TextFormatter formats log entries as human-readable text:
//
//	15:04:05 [INF] {bfi/engine} (run=0f8fad5b) run completed [steps=42]
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(f.parts(entry), " ") + "\n"), nil
}

func (f *TextFormatter) parts(entry *Entry) []string {
	var parts []string
	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}
	parts = append(parts, "["+entry.Level.ShortString()+"]")

	var scope []string
	var fields []string
	runID := ""
	for _, a := range entry.attrs() {
		switch a.key {
		case KeyLogger, KeyComponent:
			scope = append(scope, fmt.Sprint(a.value))
		case KeyRunID:
			runID = shortID(fmt.Sprint(a.value))
		default:
			fields = append(fields, fmt.Sprintf("%s=%v", a.key, a.value))
		}
	}
	if len(scope) > 0 {
		parts = append(parts, "{"+strings.Join(scope, "/")+"}")
	}
	if runID != "" {
		parts = append(parts, "(run="+runID+")")
	}

	parts = append(parts, entry.Message)
	if len(fields) > 0 {
		parts = append(parts, "["+strings.Join(fields, " ")+"]")
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		parts = append(parts, "duration="+entry.Duration.String())
	}
	return parts
}

// ConsoleFormatter is the text format with the level tag colored
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter

	renderer *lipgloss.Renderer
}

// NewConsoleFormatter creates a new console formatter. Colors are always
// emitted unless DisableColors is set; choosing the console format is the
// request for them.
func NewConsoleFormatter() *ConsoleFormatter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return &ConsoleFormatter{TextFormatter: NewTextFormatter(), renderer: r}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	parts := f.parts(entry)
	if !f.DisableColors {
		info, _ := entry.Level.info()
		tag := 0
		if !f.DisableTimestamp {
			tag = 1
		}
		parts[tag] = f.renderer.NewStyle().Foreground(info.color).Bold(true).Render(parts[tag])
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		"timestamp=" + entry.Timestamp.Format(f.TimestampFormat),
		"level=" + entry.Level.String(),
		fmt.Sprintf("message=%q", entry.Message),
	}

	for _, a := range entry.attrs() {
		parts = append(parts, a.key+"="+logfmtValue(a.value))
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		parts = append(parts, fmt.Sprintf("duration_ms=%.3f", durationMS(entry.Duration)))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// logfmtValue quotes strings containing spaces, quotes or '='
func logfmtValue(v interface{}) string {
	s := fmt.Sprint(v)
	if _, isString := v.(string); isString && (s == "" || strings.ContainsAny(s, " \"=")) {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

// shortID keeps text logs readable; JSON and logfmt carry the full ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
