package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictErrorDefaultMessage(t *testing.T) {
	assert.Equal(t, "A duplicate record already exists.", (&ConflictError{Field: "email"}).Error())
	assert.Equal(t, "Email taken.", (&ConflictError{Field: "email", Message: "Email taken."}).Error())
}

func TestFieldErrorsUnwrapsValidationErrors(t *testing.T) {
	err := validation.Errors{
		"email":       errors.New("Please provide a valid email address."),
		"employee_id": errors.New("Employee ID is required."),
	}

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"email":       "Please provide a valid email address.",
		"employee_id": "Employee ID is required.",
	}, fields)
}

func TestFieldErrorsUnwrapsWrappedValidationErrors(t *testing.T) {
	wrapped := fmt.Errorf("create employee: %w", validation.Errors{"email": errors.New("bad")})

	fields, ok := FieldErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, "bad", fields["email"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	_, ok := FieldErrors(errors.New("boom"))
	assert.False(t, ok)
}

func TestTranslateStatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			"not found",
			NewNotFound("Employee 'E404' not found."),
			http.StatusNotFound,
			"Employee 'E404' not found.",
		},
		{
			"conflict",
			&ConflictError{Message: "Employee ID 'E001' is already taken."},
			http.StatusConflict,
			"Employee ID 'E001' is already taken.",
		},
		{
			"network failure",
			&net.OpError{Op: "dial", Err: errors.New("connection refused")},
			http.StatusServiceUnavailable,
			"Database connection failed. Please try again.",
		},
		{
			"deadline exceeded",
			fmt.Errorf("query: %w", context.DeadlineExceeded),
			http.StatusServiceUnavailable,
			"Database connection failed. Please try again.",
		},
		{
			"unclassified",
			errors.New("boom"),
			http.StatusInternalServerError,
			"Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := Translate(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
