package apperrors

import (
	"context"
	"errors"
	"net"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ConflictError signals a uniqueness constraint violation at write time.
// Field names the colliding column when the store reported one.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "A duplicate record already exists."
}

// FieldErrors unwraps ozzo validation errors into the per-field message map
// carried by the response envelope.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for name, ferr := range verrs {
		fields[name] = ferr.Error()
	}
	return fields, true
}

// Translate maps a service error to an HTTP status and user-facing message.
// Validation errors are handled separately via FieldErrors. Conflicts and
// not-found are terminal, user-actionable outcomes; nothing is retried.
func Translate(err error) (int, string) {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Message
	}

	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, conflict.Error()
	}

	if unavailable(err) {
		return http.StatusServiceUnavailable, "Database connection failed. Please try again."
	}

	return http.StatusInternalServerError, "Internal server error."
}

func unavailable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
