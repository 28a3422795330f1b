// ============================================================================
// bfi - Tape Language Interpreter
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/bfi/foundation/bf/executor"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "BFI_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
	History     HistoryConfig     `toml:"history" yaml:"history"`

	// Source is the file the configuration was loaded from, empty for
	// built-in defaults
	Source string `toml:"-" yaml:"-"`
}

// InterpreterConfig holds tape and runaway-protection settings
type InterpreterConfig struct {
	TapeLength     int      `toml:"tape_length" yaml:"tape_length"`
	StartOffset    int      `toml:"start_offset" yaml:"start_offset"`
	EOF            string   `toml:"eof" yaml:"eof"`
	MaxSteps       int64    `toml:"max_steps" yaml:"max_steps"`
	Timeout        Duration `toml:"timeout" yaml:"timeout"`
	MaxSourceBytes int      `toml:"max_source_bytes" yaml:"max_source_bytes"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled" yaml:"enabled"`
	Path          string `toml:"path" yaml:"path"`
	RetentionDays int    `toml:"retention_days" yaml:"retention_days"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Interpreter: InterpreterConfig{
			TapeLength: executor.DefaultTapeLength,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// DefaultPaths returns the locations searched when BFI_CONFIG is unset
func DefaultPaths() []string {
	return []string{
		"./bfi.toml",
		"./bfi.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/bfi/config.toml"),
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, bfierror.Newf("config file not found: %s", path).
				WithCode(bfierror.CodeNotFound).
				WithDetail("path", path)
		}
		return nil, bfierror.Wrap(err, "failed to read config").
			WithCode(bfierror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()
	switch detectFormat(path) {
	case "toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, bfierror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(bfierror.CodeConfigError).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, bfierror.Wrap(err, "failed to parse config").
			WithCode(bfierror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.Source = path
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromEnv loads configuration from BFI_CONFIG or the first existing
// default path. Without any file the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// detectFormat determines the file format from the extension
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Interpreter.EOF == "" {
		c.Interpreter.EOF = executor.EOFError.String()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.History.Path == "" {
		c.History.Path = "${HOME}/.local/share/bfi/history.db"
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 30
	}
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks the configuration for values the interpreter cannot use
func (c *Config) Validate() error {
	in := c.Interpreter
	if in.TapeLength <= 0 {
		return invalid("interpreter.tape_length", in.TapeLength, "must be positive")
	}
	if in.StartOffset < 0 || in.StartOffset >= in.TapeLength {
		return invalid("interpreter.start_offset", in.StartOffset, "must be inside the tape")
	}
	if _, err := executor.ParseEOFPolicy(in.EOF); err != nil {
		return invalid("interpreter.eof", in.EOF, "must be error, zero or unchanged")
	}
	if in.MaxSteps < 0 {
		return invalid("interpreter.max_steps", in.MaxSteps, "must not be negative")
	}
	if in.Timeout.Duration < 0 {
		return invalid("interpreter.timeout", in.Timeout.String(), "must not be negative")
	}
	if in.MaxSourceBytes < 0 {
		return invalid("interpreter.max_source_bytes", in.MaxSourceBytes, "must not be negative")
	}

	if _, err := bfilog.ParseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level", c.Logging.Level, "unknown level")
	}
	if _, err := bfilog.ParseFormat(c.Logging.Format); err != nil {
		return invalid("logging.format", c.Logging.Format, "unknown format")
	}

	if c.History.Enabled && c.History.Path == "" {
		return invalid("history.path", c.History.Path, "required when history is enabled")
	}
	if c.History.RetentionDays < 0 {
		return invalid("history.retention_days", c.History.RetentionDays, "must not be negative")
	}
	return nil
}

// EOFPolicy returns the parsed EOF policy
func (c *Config) EOFPolicy() executor.EOFPolicy {
	policy, _ := executor.ParseEOFPolicy(c.Interpreter.EOF)
	return policy
}

// Retention returns the history retention period
func (c *Config) Retention() time.Duration {
	return time.Duration(c.History.RetentionDays) * 24 * time.Hour
}

func invalid(key string, value interface{}, reason string) error {
	return bfierror.Newf("invalid %s: %v (%s)", key, value, reason).
		WithCode(bfierror.CodeInvalidConfig).
		WithDetail("key", key).
		WithDetail("value", value)
}
