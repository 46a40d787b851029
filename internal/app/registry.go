package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/attendance"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/auth"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/employee"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/middleware"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/payroll"
	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/rbac"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	hasher auth.PasswordHasher,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(employeeRepo, hasher)
	attendanceService := attendance.NewService(db, attendanceRepo)
	payrollService := payroll.NewService(employeeRepo, attendanceRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService, enforcer)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, enforcer)
	}

	return nil
}
