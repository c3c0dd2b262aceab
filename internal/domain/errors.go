package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
)

// Common validation messages shared by entity packages.
const (
	MsgRequired          = "is required"
	MsgMustBeNonNegative = "must be zero or positive"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrInvalidInput) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the failing fields in key order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

// Unwrap returns ErrInvalidInput so errors.Is matches every validation error.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Fields collects per-field validation failures while an entity is being
// checked. The zero value is ready to use.
type Fields map[string]string

// Add records msg for field unless the field already has a failure.
func (f *Fields) Add(field, msg string) {
	if *f == nil {
		*f = make(Fields)
	}
	if _, exists := (*f)[field]; !exists {
		(*f)[field] = msg
	}
}

// Err returns a *ValidationError when any failure was recorded, or nil.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}
