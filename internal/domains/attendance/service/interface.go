package service

import (
	"context"

	"hrms-backend/internal/domains/attendance/model"
)

// Service is the attendance domain's business logic contract.
type Service interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Attendance, error)
	Mark(ctx context.Context, req model.MarkAttendanceRequest) (*model.Attendance, error)
	// Update changes the status of the (employee, date) record; status must
	// already be validated by the caller.
	Update(ctx context.Context, employeeID, date, status string) (*model.Attendance, error)
	Delete(ctx context.Context, employeeID, date string) error
	Summary(ctx context.Context, employeeID string) (*model.Summary, error)
	// BulkMark processes entries independently; per-entry failures are
	// collected in the result, not returned as an error.
	BulkMark(ctx context.Context, req model.BulkMarkRequest) (*model.BulkResult, error)
}
