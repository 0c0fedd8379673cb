// Package config resolves the selections for one generation run. Compiled
// defaults are overlaid by a YAML preset, then by LIFTOFF_* environment
// variables; command-line flags are applied last by the caller. Validate
// checks the result against the catalog.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the selections are invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrPresetNotFound indicates the preset file does not exist.
	ErrPresetNotFound = errors.New("config: preset not found")

	// ErrInvalidYAML indicates invalid YAML syntax in a preset file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidEnv indicates a LIFTOFF_* variable could not be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment override")

	// ErrMissingCore indicates the core platform is not enabled.
	ErrMissingCore = errors.New("config: core platform is required")

	// ErrInvalidIdentifier indicates a package or class name that is not a
	// valid Java identifier.
	ErrInvalidIdentifier = errors.New("config: invalid java identifier")

	// ErrDynamicToken indicates an unexpanded template token in a value.
	ErrDynamicToken = errors.New("config: unexpanded dynamic token detected")

	// ErrIncompatible indicates selections that cannot be generated together.
	ErrIncompatible = errors.New("config: incompatible selections")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is reports ErrInvalidConfig for any collection and otherwise matches the
// sentinels wrapped by the contained errors.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

// Fields returns the names of the invalid fields in report order.
func (e *ValidationErrors) Fields() []string {
	out := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		out[i] = ve.Field
	}
	return out
}
