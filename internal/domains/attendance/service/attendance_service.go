package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/domains/attendance/repository"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
	"hrms-backend/internal/shared/apperrors"
)

const recentRecordLimit = 10

type attendanceService struct {
	repo      repository.Repository
	employees employeeRepo.Repository
}

func NewService(repo repository.Repository, employees employeeRepo.Repository) Service {
	return &attendanceService{repo: repo, employees: employees}
}

func (s *attendanceService) List(ctx context.Context, filter model.ListFilter) ([]model.Attendance, error) {
	filter.EmployeeID = strings.ToUpper(strings.TrimSpace(filter.EmployeeID))
	filter.Date = strings.TrimSpace(filter.Date)
	filter.Month = strings.TrimSpace(filter.Month)

	// A month filter narrows to the whole month; an exact date alongside it
	// is contradictory and is dropped.
	if filter.Month != "" {
		filter.Date = ""
	}

	return s.repo.List(ctx, filter)
}

func (s *attendanceService) Mark(ctx context.Context, req model.MarkAttendanceRequest) (*model.Attendance, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Employee '%s' not found.", req.EmployeeID))
	}

	rec := &model.Attendance{
		ID:           uuid.New(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.FullName,
		Date:         req.Date,
		Status:       req.Status,
		MarkedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			conflict.Message = fmt.Sprintf(
				"Attendance already marked for employee '%s' on %s. Use update to change it.",
				req.EmployeeID, req.Date)
			return nil, conflict
		}
		return nil, err
	}

	return rec, nil
}

func (s *attendanceService) Update(ctx context.Context, employeeID, date, status string) (*model.Attendance, error) {
	id := strings.ToUpper(strings.TrimSpace(employeeID))

	rec, err := s.repo.UpdateStatus(ctx, id, date, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("Attendance record not found.")
	}
	return rec, nil
}

func (s *attendanceService) Delete(ctx context.Context, employeeID, date string) error {
	id := strings.ToUpper(strings.TrimSpace(employeeID))

	deleted, err := s.repo.Delete(ctx, id, date)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Attendance record not found.")
	}
	return nil
}

func (s *attendanceService) Summary(ctx context.Context, employeeID string) (*model.Summary, error) {
	id := strings.ToUpper(strings.TrimSpace(employeeID))

	emp, err := s.employees.GetByEmployeeID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Employee '%s' not found.", id))
	}

	records, err := s.repo.ListByEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		EmployeeID:   id,
		EmployeeName: emp.FullName,
		TotalRecords: len(records),
	}

	monthly := map[string]*model.MonthlyBreakdown{}
	for _, rec := range records {
		month := rec.Date
		if len(month) >= 7 {
			month = month[:7]
		}
		mb, ok := monthly[month]
		if !ok {
			mb = &model.MonthlyBreakdown{Month: month}
			monthly[month] = mb
		}
		if rec.Status == model.StatusPresent {
			summary.TotalPresent++
			mb.Present++
		} else {
			summary.TotalAbsent++
			mb.Absent++
		}
	}

	summary.AttendanceRate = attendanceRate(summary.TotalPresent, summary.TotalRecords)
	summary.MonthlyBreakdown = sortedMonths(monthly)

	limit := recentRecordLimit
	if len(records) < limit {
		limit = len(records)
	}
	summary.RecentRecords = records[:limit]

	return summary, nil
}

func (s *attendanceService) BulkMark(ctx context.Context, req model.BulkMarkRequest) (*model.BulkResult, error) {
	result := &model.BulkResult{Errors: make([]model.BulkError, 0)}

	for _, entry := range req.Records {
		id := strings.ToUpper(strings.TrimSpace(entry.EmployeeID))
		status := strings.TrimSpace(entry.Status)

		if !model.IsValidStatus(status) {
			result.Errors = append(result.Errors, model.BulkError{EmployeeID: id, Error: "Invalid status."})
			continue
		}

		emp, err := s.employees.GetByEmployeeID(ctx, id)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			result.Errors = append(result.Errors, model.BulkError{EmployeeID: id, Error: "Employee not found."})
			continue
		}

		rec := &model.Attendance{
			ID:           uuid.New(),
			EmployeeID:   id,
			EmployeeName: emp.FullName,
			Date:         req.Date,
			Status:       status,
			MarkedAt:     time.Now().UTC(),
		}

		created, err := s.repo.Upsert(ctx, rec)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// attendanceRate is present/total as a percentage rounded to one decimal
// place; zero when there are no records.
func attendanceRate(present, total int) float64 {
	if total == 0 {
		return 0
	}
	rate, _ := decimal.NewFromInt(int64(present)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		Float64()
	return rate
}

func sortedMonths(monthly map[string]*model.MonthlyBreakdown) []model.MonthlyBreakdown {
	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	breakdown := make([]model.MonthlyBreakdown, 0, len(months))
	for _, month := range months {
		breakdown = append(breakdown, *monthly[month])
	}
	return breakdown
}
