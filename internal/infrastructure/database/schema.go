package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// Uniqueness constraint names. Repositories inspect these to tell which field
// a duplicate-key violation collided on, so they must stay in sync with the
// DDL below.
const (
	UniqueEmployeeID           = "uq_employees_employee_id"
	UniqueEmployeeEmail        = "uq_employees_email"
	UniqueAttendanceEmployeeAt = "uq_attendance_employee_date"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id          UUID PRIMARY KEY,
		employee_id TEXT NOT NULL,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + UniqueEmployeeID + ` ON employees (employee_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + UniqueEmployeeEmail + ` ON employees (email)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id            UUID PRIMARY KEY,
		employee_id   TEXT NOT NULL,
		employee_name TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL,
		status        TEXT NOT NULL,
		marked_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + UniqueAttendanceEmployeeAt + ` ON attendance (employee_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_employee ON attendance (employee_id)`,
}

// EnsureSchema creates the tables and indexes the services rely on. Every
// statement is idempotent, so concurrent or repeated startups converge on the
// same schema without error. Runs once during container construction, before
// the HTTP listener opens.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	err := WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema bootstrap failed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Msg("Database schema ensured")
	return nil
}
