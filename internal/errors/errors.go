// Package errors provides the typed error taxonomy for the mortgage engine.
//
// Callers receive either a complete result or one of three failure kinds:
// a ValidationError for malformed input (named by field), a CalculationError
// for an internal lookup that failed to resolve (named by stage), or a
// ConfigurationError for a missing or malformed rate/fee table (named by
// table). Advisory conditions are never errors; they ride along on results
// as warnings.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of error
type Kind string

const (
	// KindValidation indicates a malformed or out-of-range input field
	KindValidation Kind = "VALIDATION_ERROR"

	// KindCalculation indicates an internal lookup failed to resolve
	KindCalculation Kind = "CALCULATION_ERROR"

	// KindConfiguration indicates a required table is missing or malformed
	KindConfiguration Kind = "CONFIG_ERROR"
)

// Error represents an engine error with context
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`

	// Field is the offending input field for validation errors.
	Field string `json:"field,omitempty"`

	// Stage is the failing sub-computation for calculation errors.
	Stage string `json:"stage,omitempty"`

	// Table is the offending table for configuration errors.
	Table string `json:"table,omitempty"`

	Cause error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	subject := ""
	switch {
	case e.Field != "":
		subject = " " + e.Field
	case e.Stage != "":
		subject = " " + e.Stage
	case e.Table != "":
		subject = " " + e.Table
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s]%s: %s: %v", e.Kind, subject, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s]%s: %s", e.Kind, subject, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidation creates a validation error for the named input field.
func NewValidation(field, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindValidation,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewCalculation creates a calculation error for the named sub-computation.
func NewCalculation(stage, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindCalculation,
		Stage:   stage,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewConfiguration creates a configuration error for the named table.
func NewConfiguration(table, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Table:   table,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapConfiguration wraps an underlying error as a configuration error.
func WrapConfiguration(table, message string, cause error) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Table:   table,
		Message: message,
		Cause:   cause,
	}
}

// IsKind reports whether err is an engine Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
