package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: "e001",
		FullName:   "Jane Doe",
		Email:      "JANE@X.COM",
		Department: "Engineering",
	}
}

func TestNormalizeCaseFolds(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "  e001 ",
		FullName:   " Jane Doe ",
		Email:      " JANE@X.COM ",
		Department: " Engineering ",
	}
	req.Normalize()

	assert.Equal(t, "E001", req.EmployeeID)
	assert.Equal(t, "Jane Doe", req.FullName)
	assert.Equal(t, "jane@x.com", req.Email)
	assert.Equal(t, "Engineering", req.Department)
}

func TestValidateAcceptsCleanRequest(t *testing.T) {
	req := validRequest()
	req.Normalize()

	assert.NoError(t, req.Validate(false))
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateEmployeeRequest)
		field   string
		message string
	}{
		{
			name:    "missing employee id",
			mutate:  func(r *CreateEmployeeRequest) { r.EmployeeID = "" },
			field:   "employee_id",
			message: "Employee ID is required.",
		},
		{
			name:    "employee id too short",
			mutate:  func(r *CreateEmployeeRequest) { r.EmployeeID = "E" },
			field:   "employee_id",
			message: "Employee ID must be between 2 and 20 characters.",
		},
		{
			name:    "employee id too long",
			mutate:  func(r *CreateEmployeeRequest) { r.EmployeeID = strings.Repeat("E", 21) },
			field:   "employee_id",
			message: "Employee ID must be between 2 and 20 characters.",
		},
		{
			name:    "missing full name",
			mutate:  func(r *CreateEmployeeRequest) { r.FullName = "" },
			field:   "full_name",
			message: "Full name is required.",
		},
		{
			name:    "full name too long",
			mutate:  func(r *CreateEmployeeRequest) { r.FullName = strings.Repeat("a", 101) },
			field:   "full_name",
			message: "Full name must be between 2 and 100 characters.",
		},
		{
			name:    "missing email",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "" },
			field:   "email",
			message: "Email address is required.",
		},
		{
			name:    "malformed email",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: "Please provide a valid email address.",
		},
		{
			name:    "missing department",
			mutate:  func(r *CreateEmployeeRequest) { r.Department = "" },
			field:   "department",
			message: "Department is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			req.Normalize()

			err := req.Validate(false)
			require.Error(t, err)

			verrs, ok := err.(validation.Errors)
			require.True(t, ok)
			require.Contains(t, verrs, tt.field)
			assert.Equal(t, tt.message, verrs[tt.field].Error())
		})
	}
}

func TestValidateUpdateSkipsEmployeeID(t *testing.T) {
	req := validRequest()
	req.EmployeeID = ""
	req.Normalize()

	assert.NoError(t, req.Validate(true))
}

func TestValidateDepartmentIsFreeForm(t *testing.T) {
	// Membership in the fixed department list is a presentation concern;
	// any non-empty department passes validation.
	req := validRequest()
	req.Department = "Skunkworks"
	req.Normalize()

	assert.NoError(t, req.Validate(false))
}

func TestDepartmentsListIsFixed(t *testing.T) {
	assert.Len(t, Departments, 10)
	assert.Contains(t, Departments, "Engineering")
	assert.Contains(t, Departments, "Human Resources")
}
