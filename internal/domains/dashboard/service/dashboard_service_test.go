package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "hrms-backend/internal/domains/attendance/model"
	employeeModel "hrms-backend/internal/domains/employee/model"
)

type countingEmployeeRepo struct {
	total     int
	breakdown []employeeModel.DepartmentCount
}

func (c *countingEmployeeRepo) List(_ context.Context, _ employeeModel.ListFilter) ([]employeeModel.Employee, error) {
	return nil, nil
}

func (c *countingEmployeeRepo) CountAll(_ context.Context) (int, error) { return c.total, nil }

func (c *countingEmployeeRepo) CountByDepartment(_ context.Context) ([]employeeModel.DepartmentCount, error) {
	return c.breakdown, nil
}

func (c *countingEmployeeRepo) Create(_ context.Context, _ *employeeModel.Employee) error {
	return nil
}

func (c *countingEmployeeRepo) GetByEmployeeID(_ context.Context, _ string) (*employeeModel.Employee, error) {
	return nil, nil
}

func (c *countingEmployeeRepo) Delete(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type countingAttendanceRepo struct {
	total      int
	byStatus   map[string]int
	askedDates []string
}

func (c *countingAttendanceRepo) List(_ context.Context, _ attendanceModel.ListFilter) ([]attendanceModel.Attendance, error) {
	return nil, nil
}

func (c *countingAttendanceRepo) ListByEmployee(_ context.Context, _ string) ([]attendanceModel.Attendance, error) {
	return nil, nil
}

func (c *countingAttendanceRepo) Insert(_ context.Context, _ *attendanceModel.Attendance) error {
	return nil
}

func (c *countingAttendanceRepo) Upsert(_ context.Context, _ *attendanceModel.Attendance) (bool, error) {
	return false, nil
}

func (c *countingAttendanceRepo) UpdateStatus(_ context.Context, _, _, _ string, _ time.Time) (*attendanceModel.Attendance, error) {
	return nil, nil
}

func (c *countingAttendanceRepo) Delete(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (c *countingAttendanceRepo) DeleteByEmployee(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (c *countingAttendanceRepo) CountAll(_ context.Context) (int, error) { return c.total, nil }

func (c *countingAttendanceRepo) CountByDateStatus(_ context.Context, date, status string) (int, error) {
	c.askedDates = append(c.askedDates, date)
	return c.byStatus[status], nil
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
}

func TestStatsAggregatesTodayCounts(t *testing.T) {
	employees := &countingEmployeeRepo{
		total: 10,
		breakdown: []employeeModel.DepartmentCount{
			{Department: "Engineering", Count: 6},
			{Department: "Sales", Count: 4},
		},
	}
	attendance := &countingAttendanceRepo{
		total:    42,
		byStatus: map[string]int{attendanceModel.StatusPresent: 6, attendanceModel.StatusAbsent: 2},
	}

	svc := &dashboardService{employees: employees, attendance: attendance, now: fixedClock}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, employees.breakdown, stats.DepartmentBreakdown)
	assert.Equal(t, 42, stats.TotalAttendanceRecords)

	assert.Equal(t, "2024-01-15", stats.Today.Date)
	assert.Equal(t, 6, stats.Today.Present)
	assert.Equal(t, 2, stats.Today.Absent)
	assert.Equal(t, 2, stats.Today.NotMarked)

	assert.Equal(t, []string{"2024-01-15", "2024-01-15"}, attendance.askedDates)
}

func TestStatsFloorsNotMarkedAtZero(t *testing.T) {
	// Marks can outnumber the roster after employee deletions.
	employees := &countingEmployeeRepo{total: 3}
	attendance := &countingAttendanceRepo{
		byStatus: map[string]int{attendanceModel.StatusPresent: 4, attendanceModel.StatusAbsent: 1},
	}

	svc := &dashboardService{employees: employees, attendance: attendance, now: fixedClock}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Today.NotMarked)
}
