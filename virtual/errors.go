package virtual

import (
	"errors"
	"fmt"
)

// Configuration errors reported by GridConfig.Validate and ListConfig.Validate.
var (
	ErrInvalidTotal    = errors.New("item total must not be negative")
	ErrMissingSize     = errors.New("size source is not set")
	ErrInvalidSize     = errors.New("item size must be positive")
	ErrInvalidViewport = errors.New("viewport size must not be negative")
	ErrInvalidOverscan = errors.New("overscan count must not be negative")
)

// ConfigError names the configuration field that failed validation.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("virtual: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func fieldErr(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
