package repository

import (
	"context"
	"time"

	"hrms-backend/internal/domains/attendance/model"
)

// Repository is the attendance collection's data access contract.
type Repository interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Attendance, error)
	// ListByEmployee returns every record for one employee, date descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error)
	Insert(ctx context.Context, rec *model.Attendance) error
	// Upsert inserts or updates the (employee, date) record atomically and
	// reports whether a new row was created.
	Upsert(ctx context.Context, rec *model.Attendance) (created bool, err error)
	// UpdateStatus returns (nil, nil) when no record matches.
	UpdateStatus(ctx context.Context, employeeID, date, status string, markedAt time.Time) (*model.Attendance, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, employeeID, date string) (bool, error)
	// DeleteByEmployee removes all records for one employee and returns the
	// number removed.
	DeleteByEmployee(ctx context.Context, employeeID string) (int, error)
	CountAll(ctx context.Context) (int, error)
	CountByDateStatus(ctx context.Context, date, status string) (int, error)
}
