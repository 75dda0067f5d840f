package service

import (
	"context"
	"time"

	attendanceModel "hrms-backend/internal/domains/attendance/model"
	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	"hrms-backend/internal/domains/dashboard/model"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
)

// Service computes the read-only dashboard aggregate.
type Service interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

type dashboardService struct {
	employees  employeeRepo.Repository
	attendance attendanceRepo.Repository
	now        func() time.Time
}

func NewService(employees employeeRepo.Repository, attendance attendanceRepo.Repository) Service {
	return &dashboardService{
		employees:  employees,
		attendance: attendance,
		now:        time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.Stats, error) {
	totalEmployees, err := s.employees.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.employees.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")

	present, err := s.attendance.CountByDateStatus(ctx, today, attendanceModel.StatusPresent)
	if err != nil {
		return nil, err
	}
	absent, err := s.attendance.CountByDateStatus(ctx, today, attendanceModel.StatusAbsent)
	if err != nil {
		return nil, err
	}

	totalAttendance, err := s.attendance.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	// not_marked is floored at zero.
	notMarked := totalEmployees - present - absent
	if notMarked < 0 {
		notMarked = 0
	}

	return &model.Stats{
		TotalEmployees:      totalEmployees,
		DepartmentBreakdown: breakdown,
		Today: model.TodayStats{
			Date:      today,
			Present:   present,
			Absent:    absent,
			NotMarked: notMarked,
		},
		TotalAttendanceRecords: totalAttendance,
	}, nil
}
