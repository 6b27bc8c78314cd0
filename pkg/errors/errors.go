package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures template, preset, or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistrationError indicates a component family that cannot be registered.
type RegistrationError struct {
	Component string
	Message   string
	Err       error
}

// NewRegistrationError constructs a RegistrationError for the given component family.
func NewRegistrationError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistrationError{Component: component, Message: message, Err: err}
}

func (e *RegistrationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("registration error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("registration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistrationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PersistenceError reports a failed read or write against the preference store.
type PersistenceError struct {
	Key string
	Op  string
	Err error
}

// NewPersistenceError constructs a PersistenceError for a store key and operation.
func NewPersistenceError(key, op string, err error) error {
	return &PersistenceError{Key: key, Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("persistence error: %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("persistence error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
