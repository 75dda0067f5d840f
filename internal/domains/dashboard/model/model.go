package model

import (
	employeeModel "hrms-backend/internal/domains/employee/model"
)

// TodayStats is the attendance tally for the server's current date.
type TodayStats struct {
	Date      string `json:"date"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	NotMarked int    `json:"not_marked"`
}

// Stats is the org-wide dashboard aggregate.
type Stats struct {
	TotalEmployees         int                             `json:"total_employees"`
	DepartmentBreakdown    []employeeModel.DepartmentCount `json:"department_breakdown"`
	Today                  TodayStats                      `json:"today"`
	TotalAttendanceRecords int                             `json:"total_attendance_records"`
}
