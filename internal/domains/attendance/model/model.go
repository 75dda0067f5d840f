package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses. Exactly one record may exist per (employee, date).
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is one daily mark for an employee. EmployeeName is denormalised
// from the employee at write time and is not kept in sync afterwards.
type Attendance struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	MarkedAt     time.Time `json:"marked_at"`
}

// ListFilter narrows the attendance list query. Month is a YYYY-MM prefix and
// takes precedence over Date when both are supplied.
type ListFilter struct {
	EmployeeID string
	Date       string
	Month      string
}

// MonthlyBreakdown is one month's present/absent tally in a summary.
type MonthlyBreakdown struct {
	Month   string `json:"month"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
}

// Summary aggregates an employee's attendance history.
type Summary struct {
	EmployeeID       string             `json:"employee_id"`
	EmployeeName     string             `json:"employee_name"`
	TotalPresent     int                `json:"total_present"`
	TotalAbsent      int                `json:"total_absent"`
	TotalRecords     int                `json:"total_records"`
	AttendanceRate   float64            `json:"attendance_rate"`
	MonthlyBreakdown []MonthlyBreakdown `json:"monthly_breakdown"`
	RecentRecords    []Attendance       `json:"recent_records"`
}

// BulkError records why one bulk entry was skipped.
type BulkError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BulkResult reports a bulk mark outcome; partial success is the normal case.
type BulkResult struct {
	Created int         `json:"created"`
	Updated int         `json:"updated"`
	Errors  []BulkError `json:"errors"`
}
