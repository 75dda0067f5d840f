package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hrms-backend/internal/shared/middleware"
	"hrms-backend/pkg/container"
)

// SetupRouter wires the middleware chain and every route onto a gin engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	limiter := middleware.NewRateLimiter(c.Redis.Client, c.Config.App.RateLimitPerMin)

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(),
		limiter.Handler(),
	)

	router.GET("/health", healthHandler(c))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		setupEmployeeRoutes(api, c)
		setupAttendanceRoutes(api, c)

		api.GET("/departments", c.EmployeeHandler.Departments)
		api.GET("/dashboard", c.DashboardHandler.Stats)
	}

	return router
}

func setupEmployeeRoutes(api *gin.RouterGroup, c *container.Container) {
	employees := api.Group("/employees")
	{
		employees.GET("", c.EmployeeHandler.List)
		employees.POST("", c.EmployeeHandler.Create)
		employees.GET("/:id", c.EmployeeHandler.Get)
		employees.DELETE("/:id", c.EmployeeHandler.Delete)
	}
}

func setupAttendanceRoutes(api *gin.RouterGroup, c *container.Container) {
	attendance := api.Group("/attendance")
	{
		attendance.GET("", c.AttendanceHandler.List)
		attendance.POST("", c.AttendanceHandler.Mark)
		attendance.POST("/bulk", c.AttendanceHandler.BulkMark)
		attendance.GET("/summary/:id", c.AttendanceHandler.Summary)
		attendance.PUT("/:id/:date", c.AttendanceHandler.Update)
		attendance.DELETE("/:id/:date", c.AttendanceHandler.Delete)
	}
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbHealthy := c.DB.Ping(ctx.Request.Context()) == nil
		redisHealthy := c.Redis.Healthy(ctx.Request.Context())

		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"success": dbHealthy,
			"data": gin.H{
				"database": dbHealthy,
				"redis":    redisHealthy,
			},
		})
	}
}
