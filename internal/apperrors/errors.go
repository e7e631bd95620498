// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and handlers.
var (
	// ErrNotFound is returned when an operation targets a painting id that
	// no longer exists, including a repeated delete.
	ErrNotFound = errors.New("record not found")

	// ErrAuthRequired is returned when a mutation is attempted without a
	// valid admin session.
	ErrAuthRequired = errors.New("authentication required")
)

// ValidationError carries the specific missing or malformed fields so the
// operator can fix them without losing form state. It never reaches the
// persistence layer.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// UploadError means an image never made it to storage. The submission is
// aborted before any persistence write, so the original record is untouched.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %q: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError wraps a read/write failure from the database. It is not
// retried automatically; the message is surfaced to the operator for a
// manual retry with form state preserved.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// EmailDeliveryError means a contact, inquiry or offer message was lost.
// Nothing is persisted for these forms, so the sender must retry.
type EmailDeliveryError struct {
	To  string
	Err error
}

func (e *EmailDeliveryError) Error() string {
	return fmt.Sprintf("email delivery to %s failed: %v", e.To, e.Err)
}

func (e *EmailDeliveryError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
