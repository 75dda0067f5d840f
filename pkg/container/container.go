package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hrms-backend/internal/config"
	"hrms-backend/internal/infrastructure/cache"
	"hrms-backend/internal/infrastructure/database"

	attendanceHandler "hrms-backend/internal/domains/attendance/handler"
	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	attendanceService "hrms-backend/internal/domains/attendance/service"
	dashboardHandler "hrms-backend/internal/domains/dashboard/handler"
	dashboardService "hrms-backend/internal/domains/dashboard/service"
	employeeHandler "hrms-backend/internal/domains/employee/handler"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
	employeeService "hrms-backend/internal/domains/employee/service"
)

// Container is the root of the dependency graph. Every field is a singleton,
// wired once at startup and read-only afterwards; all consistency guarantees
// live in the store's constraints, not here.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient

	EmployeeRepo   employeeRepo.Repository
	AttendanceRepo attendanceRepo.Repository

	EmployeeService   employeeService.Service
	AttendanceService attendanceService.Service
	DashboardService  dashboardService.Service

	EmployeeHandler   *employeeHandler.Handler
	AttendanceHandler *attendanceHandler.Handler
	DashboardHandler  *dashboardHandler.Handler
}

// NewContainer builds the whole graph: config, then infrastructure, then
// repositories, services and handlers. Schema bootstrap runs here, before
// the HTTP listener opens.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	c.DB = db

	// Redis only backs the rate limiter; losing it degrades to the
	// in-process fallback instead of failing startup.
	c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
	}

	c.EmployeeRepo = employeeRepo.NewRepository(db.Pool)
	c.AttendanceRepo = attendanceRepo.NewRepository(db.Pool)

	c.EmployeeService = employeeService.NewService(c.EmployeeRepo, c.AttendanceRepo)
	c.AttendanceService = attendanceService.NewService(c.AttendanceRepo, c.EmployeeRepo)
	c.DashboardService = dashboardService.NewService(c.EmployeeRepo, c.AttendanceRepo)

	c.EmployeeHandler = employeeHandler.NewHandler(c.EmployeeService)
	c.AttendanceHandler = attendanceHandler.NewHandler(c.AttendanceService)
	c.DashboardHandler = dashboardHandler.NewHandler(c.DashboardService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
