// Package config provides configuration loading for textedit.
//
// Configuration is read from a single file whose format is chosen by
// extension (TOML, YAML or JSON), then overridden by TEXTEDIT_* environment
// variables. A missing file is not an error; the defaults apply.
//
// Example TOML configuration:
//
//	[logging]
//	level = "warn"
//	file  = ""
//
//	[editor]
//	empty_indicator = "[Empty Document]"
//	file_mode       = "0644"
//	prompts         = "auto"
//
//	[clipboard]
//	system = false
//
//	[script]
//	enabled    = true
//	timeout    = "5s"
//	allow_save = false
//
// Watch reloads the file when it changes on disk.
package config
