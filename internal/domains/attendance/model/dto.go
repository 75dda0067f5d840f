package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidStatus reports whether s is exactly Present or Absent.
func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// MarkAttendanceRequest carries raw single-mark input.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.EmployeeID = strings.ToUpper(strings.TrimSpace(r.EmployeeID))
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

func (r MarkAttendanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("Employee ID is required."),
		),
		validation.Field(&r.Date,
			validation.Required.Error("Date is required."),
			validation.Match(dateRegex).Error("Date must be in YYYY-MM-DD format."),
			validation.By(func(value interface{}) error {
				s, _ := value.(string)
				if s == "" || !dateRegex.MatchString(s) {
					return nil // earlier rules report these
				}
				if _, err := time.Parse("2006-01-02", s); err != nil {
					return errors.New("Invalid date value.")
				}
				return nil
			}),
		),
		validation.Field(&r.Status,
			validation.Required.Error("Status is required."),
			validation.In(StatusPresent, StatusAbsent).
				Error("Status must be one of: Present, Absent."),
		),
	)
}

// UpdateStatusRequest carries the new status for an existing record.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BulkEntry is one (employee, status) pair in a bulk mark.
type BulkEntry struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

// BulkMarkRequest marks many employees for a single date.
type BulkMarkRequest struct {
	Date    string      `json:"date"`
	Records []BulkEntry `json:"records"`
}
