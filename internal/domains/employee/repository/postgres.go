package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/infrastructure/database"
	"hrms-backend/internal/shared/apperrors"
)

const employeeColumns = "id, employee_id, full_name, email, department, created_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Employee, error) {
	query, args := listQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByDepartment(ctx context.Context) ([]model.DepartmentCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT department, COUNT(*) AS count
		FROM employees
		GROUP BY department
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}
	defer rows.Close()

	breakdown := make([]model.DepartmentCount, 0)
	for rows.Next() {
		var dc model.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		breakdown = append(breakdown, dc)
	}
	return breakdown, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, emp *model.Employee) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO employees (id, employee_id, full_name, email, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		emp.ID, emp.EmployeeID, emp.FullName, emp.Email, emp.Department, emp.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case database.UniqueEmployeeID:
				return &apperrors.ConflictError{Field: "employee_id"}
			case database.UniqueEmployeeEmail:
				return &apperrors.ConflictError{Field: "email"}
			default:
				return &apperrors.ConflictError{}
			}
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var e model.Employee
	err := r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID).
		Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &e, nil
}

func (r *postgresRepository) Delete(ctx context.Context, employeeID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// listQuery translates a filter into SQL. Search matches case-insensitively
// as a substring of the identifier, name or email; department matches exactly.
func listQuery(filter model.ListFilter) (string, []any) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	clauses := []string{}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(employee_id ILIKE $%d OR full_name ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		clauses = append(clauses, fmt.Sprintf("department = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}

// escapeLike neutralises ILIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
