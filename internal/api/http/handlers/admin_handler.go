package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/service"
)

// AdminHandler exposes the admin dashboard endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Stats handles GET /api/admin/stats, admin-only.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admin.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}
