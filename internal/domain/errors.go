package domain

import (
	"fmt"
)

// ConfigNotFoundError is returned when the shortcut file path does not resolve to a file
type ConfigNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("Config file '%s' not found.", e.Path)
}

// Unwrap returns the underlying filesystem error
func (e *ConfigNotFoundError) Unwrap() error {
	return e.Err
}

// ConfigMalformedError is returned when the shortcut file cannot be parsed
// or an entry is missing a required field
type ConfigMalformedError struct {
	Path   string
	Format string // "JSON" or "YAML"
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ConfigMalformedError) Error() string {
	format := e.Format
	if format == "" {
		format = "JSON"
	}

	msg := fmt.Sprintf("Config file '%s' contains invalid %s.", e.Path, format)
	if e.Reason != "" {
		msg += " " + e.Reason
	}
	return msg
}

// Unwrap returns the underlying decode error, if any
func (e *ConfigMalformedError) Unwrap() error {
	return e.Err
}
