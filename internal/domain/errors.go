package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors shared across layers.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrApexClassMissing = errors.New("apex class not found")
	ErrRequestTimeout   = errors.New("request timeout")
	ErrUpstream         = errors.New("salesforce request failed")
)

// ValidationError lists the state of every required input field.
// It is produced before any network call is made.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError returns a ValidationError if any field is not present,
// or nil otherwise.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	for _, state := range fields {
		if state != FieldPresent {
			return &ValidationError{Message: message, Fields: fields}
		}
	}
	return nil
}

func (e *ValidationError) Error() string {
	bad := make([]string, 0, len(e.Fields))
	for name, state := range e.Fields {
		if state != FieldPresent {
			bad = append(bad, name+" "+state)
		}
	}
	sort.Strings(bad)
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(bad, ", "))
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
