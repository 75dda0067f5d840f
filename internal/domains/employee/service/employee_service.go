package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/domains/employee/repository"
	"hrms-backend/internal/shared/apperrors"
)

type employeeService struct {
	repo       repository.Repository
	attendance attendanceRepo.Repository
}

func NewService(repo repository.Repository, attendance attendanceRepo.Repository) Service {
	return &employeeService{repo: repo, attendance: attendance}
}

func (s *employeeService) List(ctx context.Context, filter model.ListFilter) ([]model.Employee, int, error) {
	employees, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	// The envelope reports both the filtered list length and the true total,
	// so the total comes from a separate unfiltered count.
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (s *employeeService) Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.Employee, error) {
	req.Normalize()
	if err := req.Validate(false); err != nil {
		return nil, err
	}

	emp := &model.Employee{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			switch conflict.Field {
			case "employee_id":
				conflict.Message = fmt.Sprintf("Employee ID '%s' is already taken.", emp.EmployeeID)
			case "email":
				conflict.Message = fmt.Sprintf("Email '%s' is already registered.", emp.Email)
			}
			return nil, conflict
		}
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID string) (*model.Employee, error) {
	id := normalizeID(employeeID)

	emp, err := s.repo.GetByEmployeeID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Employee '%s' not found.", id))
	}
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) (int, error) {
	id := normalizeID(employeeID)

	emp, err := s.repo.GetByEmployeeID(ctx, id)
	if err != nil {
		return 0, err
	}
	if emp == nil {
		return 0, apperrors.NewNotFound(fmt.Sprintf("Employee '%s' not found.", id))
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return 0, err
	}

	removed, err := s.attendance.DeleteByEmployee(ctx, id)
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// normalizeID folds path-parameter identifiers to the stored uppercase form,
// so mixed-case lookups hit the same record the create path wrote.
func normalizeID(employeeID string) string {
	return strings.ToUpper(strings.TrimSpace(employeeID))
}
