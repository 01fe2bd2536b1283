// Package apperr defines the error taxonomy the service reports to callers.
// Handlers map these to HTTP status codes; anything unclassified is a generic
// storage/internal failure.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is deliberately generic: it never reveals which
	// of email or password was wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrTicketNotFound uses identical wording for a wrong ID and a wrong
	// email so the tracking lookup leaks neither.
	ErrTicketNotFound = errors.New("No ticket found for that ID and email.")

	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is the generic staff-facing miss; the tracking path uses
	// ErrTicketNotFound instead.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or malformed field. The operation is
// aborted with no partial state change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DeliveryError wraps an email transport failure. It is surfaced as a
// non-blocking warning and never rolls back committed state.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "email delivery failed: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }

func NewDeliveryError(err error) error {
	return &DeliveryError{Err: err}
}

func IsDelivery(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de)
}
