package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading.
var (
	// ErrUnsupportedFormat indicates a config file extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidValue indicates a setting that failed validation.
	ErrInvalidValue = errors.New("invalid config value")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Format  string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s config %s: %s", e.Format, e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Key     string // Dotted setting path (e.g., "logging.level")
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %q: %s", e.Key, e.Value, e.Message)
}

// Is reports ErrInvalidValue for every validation error.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}
