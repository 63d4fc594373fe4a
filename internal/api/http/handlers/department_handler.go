package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// DepartmentHandler exposes department CRUD.
type DepartmentHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentHandler constructs handler.
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departmentService}
}

// Create handles POST /api/department, admin-only.
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	dept, err := h.departments.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Department added successfully",
		"department": departmentResponse(dept),
	})
}

// List handles GET /api/department.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.departments.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		items = append(items, departmentResponse(&departments[i]))
	}
	return c.JSON(fiber.Map{"success": true, "departments": items})
}

// Get handles GET /api/department/:id.
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	dept, err := h.departments.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "department": departmentResponse(dept)})
}

// Update handles PUT /api/department/:id, admin-only.
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	dept, err := h.departments.Update(c.Context(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Department updated successfully",
		"department": departmentResponse(dept),
	})
}

// Delete handles DELETE /api/department/:id, admin-only.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.departments.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Department deleted"})
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}
