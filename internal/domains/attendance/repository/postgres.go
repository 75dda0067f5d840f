package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/infrastructure/database"
	"hrms-backend/internal/shared/apperrors"
)

const attendanceColumns = "id, employee_id, employee_name, date, status, marked_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Attendance, error) {
	query, args := listQuery(filter)
	return r.queryRecords(ctx, query, args...)
}

// listQuery translates a filter into SQL. Month is matched as a date prefix
// and takes precedence over an exact date when both are given.
func listQuery(filter model.ListFilter) (string, []any) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance`
	clauses := []string{}
	args := []any{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	switch {
	case filter.Month != "":
		args = append(args, escapeLike(filter.Month)+"%")
		clauses = append(clauses, fmt.Sprintf("date LIKE $%d", len(args)))
	case filter.Date != "":
		args = append(args, filter.Date)
		clauses = append(clauses, fmt.Sprintf("date = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date DESC"

	return query, args
}

func (r *postgresRepository) ListByEmployee(ctx context.Context, employeeID string) ([]model.Attendance, error) {
	return r.queryRecords(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = $1 ORDER BY date DESC`,
		employeeID)
}

func (r *postgresRepository) queryRecords(ctx context.Context, query string, args ...any) ([]model.Attendance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]model.Attendance, 0)
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Date, &a.Status, &a.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *postgresRepository) Insert(ctx context.Context, rec *model.Attendance) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO attendance (id, employee_id, employee_name, date, status, marked_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Date, rec.Status, rec.MarkedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == database.UniqueAttendanceEmployeeAt {
				return &apperrors.ConflictError{Field: "employee_date"}
			}
			return &apperrors.ConflictError{}
		}
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
	return nil
}

// Upsert resolves the (employee, date) uniqueness constraint atomically:
// xmax = 0 on the returned row means the insert won, anything else means an
// existing row was updated. The constraint itself remains the backstop, so
// there is no check-then-act window.
func (r *postgresRepository) Upsert(ctx context.Context, rec *model.Attendance) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx, `
		INSERT INTO attendance (id, employee_id, employee_name, date, status, marked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status, marked_at = EXCLUDED.marked_at
		RETURNING (xmax = 0) AS inserted`,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Date, rec.Status, rec.MarkedAt).
		Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, employeeID, date, status string, markedAt time.Time) (*model.Attendance, error) {
	var a model.Attendance
	err := r.pool.QueryRow(ctx, `
		UPDATE attendance
		SET status = $3, marked_at = $4
		WHERE employee_id = $1 AND date = $2
		RETURNING `+attendanceColumns,
		employeeID, date, status, markedAt).
		Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Date, &a.Status, &a.MarkedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, employeeID, date string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM attendance WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM attendance`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByDateStatus(ctx context.Context, date, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`, date, status).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by date: %w", err)
	}
	return count, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
