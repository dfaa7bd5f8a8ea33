package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Editor.EmptyIndicator != "[Empty Document]" {
		t.Errorf("EmptyIndicator = %q", cfg.Editor.EmptyIndicator)
	}
	if cfg.FileMode() != 0o644 {
		t.Errorf("FileMode() = %o, want 644", cfg.FileMode())
	}
	if cfg.ScriptTimeout() != 5*time.Second {
		t.Errorf("ScriptTimeout() = %v, want 5s", cfg.ScriptTimeout())
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[logging]
level = "debug"

[editor]
empty_indicator = "(empty)"
file_mode = "0600"

[clipboard]
system = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Editor.EmptyIndicator != "(empty)" {
		t.Errorf("EmptyIndicator = %q", cfg.Editor.EmptyIndicator)
	}
	if cfg.FileMode() != 0o600 {
		t.Errorf("FileMode() = %o, want 600", cfg.FileMode())
	}
	if !cfg.Clipboard.System {
		t.Error("Clipboard.System should be true")
	}
	// Untouched settings keep defaults.
	if cfg.Editor.Prompts != PromptsAuto || !cfg.Script.Enabled {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
editor:
  prompts: never
script:
  enabled: false
  timeout: 250ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.Prompts != PromptsNever {
		t.Errorf("Prompts = %q, want never", cfg.Editor.Prompts)
	}
	if cfg.Script.Enabled {
		t.Error("Script.Enabled should be false")
	}
	if cfg.ScriptTimeout() != 250*time.Millisecond {
		t.Errorf("ScriptTimeout() = %v", cfg.ScriptTimeout())
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"script": {"allow_save": true}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Script.AllowSave {
		t.Error("Script.AllowSave should be true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[logging\nlevel = ")

	_, err := Load(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Format != "toml" || pe.Path != path {
		t.Errorf("ParseError = %+v", pe)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.ini", "level=debug")

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"file mode", func(c *Config) { c.Editor.FileMode = "rw-r--r--" }, "editor.file_mode"},
		{"file mode range", func(c *Config) { c.Editor.FileMode = "7777" }, "editor.file_mode"},
		{"prompts", func(c *Config) { c.Editor.Prompts = "sometimes" }, "editor.prompts"},
		{"timeout", func(c *Config) { c.Script.Timeout = "-1s" }, "script.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("Validate() = %v, want ErrInvalidValue", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Key != tt.key {
				t.Errorf("ValidationError key = %v, want %s", ve, tt.key)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TEXTEDIT_LOGGING_LEVEL", "error")
	t.Setenv("TEXTEDIT_CLIPBOARD_SYSTEM", "true")
	t.Setenv("TEXTEDIT_EDITOR_EMPTY_INDICATOR", "")

	cfg := Default()
	if err := ApplyEnv(cfg, EnvPrefix); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", cfg.Logging.Level)
	}
	if !cfg.Clipboard.System {
		t.Error("Clipboard.System should be true")
	}
	if cfg.Editor.EmptyIndicator != "" {
		t.Errorf("empty env value should be applied, got %q", cfg.Editor.EmptyIndicator)
	}
}

func TestApplyEnvBadBool(t *testing.T) {
	t.Setenv("TEXTEDIT_SCRIPT_ENABLED", "maybe")

	err := ApplyEnv(Default(), EnvPrefix)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Key != "script.enabled" {
		t.Fatalf("expected script.enabled validation error, got %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}
