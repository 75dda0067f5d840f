package model

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateEmployeeRequest carries raw employee input. Normalize before Validate;
// validation failures reject the whole request, never a partial apply.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Normalize trims every field and case-folds the identifier to upper and the
// email to lower, so uniqueness is casing-insensitive.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
}

// Validate reports per-field errors. The identifier is skipped on updates,
// where it comes from the path instead of the body.
func (r CreateEmployeeRequest) Validate(isUpdate bool) error {
	fields := []*validation.FieldRules{
		validation.Field(&r.FullName,
			validation.Required.Error("Full name is required."),
			validation.Length(2, 100).Error("Full name must be between 2 and 100 characters."),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email address is required."),
			validation.Match(emailRegex).Error("Please provide a valid email address."),
		),
		validation.Field(&r.Department,
			validation.Required.Error("Department is required."),
		),
	}
	if !isUpdate {
		fields = append(fields, validation.Field(&r.EmployeeID,
			validation.Required.Error("Employee ID is required."),
			validation.Length(2, 20).Error("Employee ID must be between 2 and 20 characters."),
		))
	}
	return validation.ValidateStruct(&r, fields...)
}
