package app

import (
	"github.com/gorvensalaveria/manila-payroll-backend/internal/department"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/employee"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/stats"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	// --- Repositories ---
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	userRepo := user.NewRepository(db)
	statsRepo := stats.NewRepository(db)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb)
	employeeService := employee.NewService(employeeRepo)
	userService := user.NewService(userRepo)
	statsService := stats.NewService(statsRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	userHandler := user.NewHandler(userService)
	statsHandler := stats.NewHandler(statsService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		user.RegisterRoutes(api, userHandler)
		stats.RegisterRoutes(api, statsHandler)
	}
}
