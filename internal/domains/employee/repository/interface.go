package repository

import (
	"context"

	"hrms-backend/internal/domains/employee/model"
)

// Repository is the employee collection's data access contract.
type Repository interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Employee, error)
	CountAll(ctx context.Context) (int, error)
	CountByDepartment(ctx context.Context) ([]model.DepartmentCount, error)
	Create(ctx context.Context, emp *model.Employee) error
	// GetByEmployeeID returns (nil, nil) when no employee matches.
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, employeeID string) (bool, error)
}
