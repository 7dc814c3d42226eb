package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services, repositories and transport. Wrap them
// with fmt.Errorf("...: %w", ...) so errors.Is keeps matching.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrInvalidGrade  = errors.New("invalid grade")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// InvalidGradeError reports a grade outside the [MinGrade, MaxGrade] scale.
// It unwraps to ErrInvalidGrade so callers can match with errors.Is.
type InvalidGradeError struct {
	Grade int
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("grade %d out of range [%d, %d]", e.Grade, MinGrade, MaxGrade)
}

func (e *InvalidGradeError) Unwrap() error { return ErrInvalidGrade }

// FieldError names one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field-level problems so a request can report
// them all at once. It unwraps to ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
