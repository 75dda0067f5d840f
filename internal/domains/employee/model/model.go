package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is an HR employee record. Records are immutable after creation;
// the only lifecycle transition is deletion, which cascades to attendance.
type Employee struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// Departments is the fixed set served to clients for dropdown population.
// Membership is not enforced at write time; any non-empty department passes
// validation.
var Departments = []string{
	"Engineering",
	"Product",
	"Design",
	"Marketing",
	"Sales",
	"Finance",
	"Human Resources",
	"Operations",
	"Legal",
	"Customer Support",
}

// DepartmentCount is one row of the dashboard's department breakdown.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// ListFilter narrows the employee list query.
type ListFilter struct {
	// Search matches case-insensitively as a substring of employee_id,
	// full_name or email.
	Search string
	// Department matches exactly.
	Department string
}
