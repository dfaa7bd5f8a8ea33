package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "TEXTEDIT_"

// envSetting maps one environment variable suffix onto a config field.
type envSetting struct {
	key string
	set func(c *Config, val string) error
}

func stringSetter(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, val string) error {
		*field(c) = val
		return nil
	}
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// envSettings lists the supported variables by suffix.
var envSettings = map[string]envSetting{
	"LOGGING_LEVEL":          {"logging.level", stringSetter(func(c *Config) *string { return &c.Logging.Level })},
	"LOGGING_FILE":           {"logging.file", stringSetter(func(c *Config) *string { return &c.Logging.File })},
	"EDITOR_EMPTY_INDICATOR": {"editor.empty_indicator", stringSetter(func(c *Config) *string { return &c.Editor.EmptyIndicator })},
	"EDITOR_FILE_MODE":       {"editor.file_mode", stringSetter(func(c *Config) *string { return &c.Editor.FileMode })},
	"EDITOR_PROMPTS":         {"editor.prompts", stringSetter(func(c *Config) *string { return &c.Editor.Prompts })},
	"CLIPBOARD_SYSTEM":       {"clipboard.system", boolSetter(func(c *Config) *bool { return &c.Clipboard.System })},
	"SCRIPT_ENABLED":         {"script.enabled", boolSetter(func(c *Config) *bool { return &c.Script.Enabled })},
	"SCRIPT_TIMEOUT":         {"script.timeout", stringSetter(func(c *Config) *string { return &c.Script.Timeout })},
	"SCRIPT_ALLOW_SAVE":      {"script.allow_save", boolSetter(func(c *Config) *bool { return &c.Script.AllowSave })},
}

// ApplyEnv overrides cfg with prefixed environment variables, e.g.
// TEXTEDIT_LOGGING_LEVEL=debug. Empty values are treated as set.
func ApplyEnv(cfg *Config, prefix string) error {
	for suffix, s := range envSettings {
		val, ok := os.LookupEnv(prefix + suffix)
		if !ok {
			continue
		}
		if err := s.set(cfg, val); err != nil {
			return &ValidationError{
				Key:     s.key,
				Value:   val,
				Message: fmt.Sprintf("from %s%s: %v", prefix, suffix, err),
			}
		}
	}
	return nil
}
