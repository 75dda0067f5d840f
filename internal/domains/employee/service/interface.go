package service

import (
	"context"

	"hrms-backend/internal/domains/employee/model"
)

// Service is the employee domain's business logic contract.
type Service interface {
	// List returns the filtered employees plus the unfiltered total count.
	List(ctx context.Context, filter model.ListFilter) ([]model.Employee, int, error)
	Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error)
	Get(ctx context.Context, employeeID string) (*model.Employee, error)
	// Delete removes the employee and all their attendance records, returning
	// the number of attendance records removed.
	Delete(ctx context.Context, employeeID string) (int, error)
}
