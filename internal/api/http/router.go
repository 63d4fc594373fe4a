package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Department     *handlers.DepartmentHandler
	Employee       *handlers.EmployeeHandler
	Leave          *handlers.LeaveHandler
	Attendance     *handlers.AttendanceHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Get("/verify", cfg.Auth.Verify)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	adminOnly := auth.RequireRole(domain.RoleAdmin)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, adminOnly)
	users.Get("", cfg.Auth.ListUsers)

	department := api.Group("/department", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	department.Get("", cfg.Department.List)
	department.Get("/:id", cfg.Department.Get)
	department.Post("", adminOnly, cfg.Department.Create)
	department.Put("/:id", adminOnly, cfg.Department.Update)
	department.Delete("/:id", adminOnly, cfg.Department.Delete)

	employee := api.Group("/employee", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	employee.Get("", cfg.Employee.List)
	employee.Get("/:id", cfg.Employee.Get)
	employee.Post("", adminOnly, cfg.Employee.Create)
	employee.Put("/:id", adminOnly, cfg.Employee.Update)

	leave := api.Group("/leave", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	leave.Post("", cfg.Leave.Create)
	leave.Get("", cfg.Leave.List)
	leave.Put("/:id/status", adminOnly, cfg.Leave.UpdateStatus)

	attendance := api.Group("/attendance", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	attendance.Post("/generate", adminOnly, cfg.Attendance.Generate)
	attendance.Post("/scan", cfg.Attendance.Scan)
	attendance.Get("", cfg.Attendance.List)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, adminOnly)
	admin.Get("/stats", cfg.Admin.Stats)
}
