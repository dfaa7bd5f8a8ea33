package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Prompt modes for the interactive shell.
const (
	PromptsAuto   = "auto"
	PromptsAlways = "always"
	PromptsNever  = "never"
)

// Config is the complete textedit configuration.
type Config struct {
	Logging   LoggingConfig   `toml:"logging" yaml:"logging" json:"logging"`
	Editor    EditorConfig    `toml:"editor" yaml:"editor" json:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard" json:"clipboard"`
	Script    ScriptConfig    `toml:"script" yaml:"script" json:"script"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level" json:"level"`
	// File receives log output. Empty means stderr.
	File string `toml:"file" yaml:"file" json:"file"`
}

// EditorConfig configures the buffer and the shell.
type EditorConfig struct {
	EmptyIndicator string `toml:"empty_indicator" yaml:"empty_indicator" json:"empty_indicator"`
	// FileMode is an octal permission string used when saving creates a file.
	FileMode string `toml:"file_mode" yaml:"file_mode" json:"file_mode"`
	// Prompts is one of auto, always, never.
	Prompts string `toml:"prompts" yaml:"prompts" json:"prompts"`
}

// ClipboardConfig configures the system clipboard mirror.
type ClipboardConfig struct {
	System bool `toml:"system" yaml:"system" json:"system"`
}

// ScriptConfig configures the Lua script runner.
type ScriptConfig struct {
	Enabled   bool   `toml:"enabled" yaml:"enabled" json:"enabled"`
	Timeout   string `toml:"timeout" yaml:"timeout" json:"timeout"`
	AllowSave bool   `toml:"allow_save" yaml:"allow_save" json:"allow_save"`
}

// Default values.
const (
	DefaultLogLevel       = "warn"
	DefaultEmptyIndicator = "[Empty Document]"
	DefaultFileMode       = "0644"
	DefaultScriptTimeout  = "5s"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Editor: EditorConfig{
			EmptyIndicator: DefaultEmptyIndicator,
			FileMode:       DefaultFileMode,
			Prompts:        PromptsAuto,
		},
		Script: ScriptConfig{
			Enabled: true,
			Timeout: DefaultScriptTimeout,
		},
	}
}

// DefaultPath returns the user config file location,
// e.g. ~/.config/textedit/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textedit", "config.toml")
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{
			Key: "logging.level", Value: c.Logging.Level,
			Message: "must be debug, info, warn, or error",
		})
	}

	if _, err := parseFileMode(c.Editor.FileMode); err != nil {
		errs = append(errs, &ValidationError{
			Key: "editor.file_mode", Value: c.Editor.FileMode,
			Message: "must be an octal permission such as 0644",
		})
	}

	switch c.Editor.Prompts {
	case PromptsAuto, PromptsAlways, PromptsNever:
	default:
		errs = append(errs, &ValidationError{
			Key: "editor.prompts", Value: c.Editor.Prompts,
			Message: "must be auto, always, or never",
		})
	}

	if d, err := time.ParseDuration(c.Script.Timeout); err != nil || d <= 0 {
		errs = append(errs, &ValidationError{
			Key: "script.timeout", Value: c.Script.Timeout,
			Message: "must be a positive duration such as 5s",
		})
	}

	return errors.Join(errs...)
}

// FileMode returns the parsed editor.file_mode, falling back to 0644.
func (c *Config) FileMode() fs.FileMode {
	mode, err := parseFileMode(c.Editor.FileMode)
	if err != nil {
		return 0o644
	}
	return mode
}

// ScriptTimeout returns the parsed script.timeout, falling back to 5s.
func (c *Config) ScriptTimeout() time.Duration {
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func parseFileMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 || v > 0o777 {
		return 0, strconv.ErrRange
	}
	return fs.FileMode(v), nil
}
