package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors returned by the ledger services. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("resource belongs to another user")
	ErrInvalidName        = errors.New("invalid category name")
	ErrDuplicateName      = errors.New("category name already exists")
	ErrNotEditable        = errors.New("category cannot be edited")
	ErrNotDeletable       = errors.New("category cannot be deleted")
	ErrInvalidCategory    = errors.New("category does not exist or belongs to another user")
	ErrValidationFailed   = errors.New("validation failed")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// ValidationError carries field-level validation failures and matches ErrValidationFailed
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed.Error(), strings.Join(e.Details(), "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Details returns "field: message" strings sorted by field name
func (e *ValidationError) Details() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return details
}
