package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/clock"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// LeaveHandler exposes leave request endpoints.
type LeaveHandler struct {
	leaves *service.LeaveService
}

// NewLeaveHandler constructs handler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaves: leaveService}
}

// Create handles POST /api/leave.
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	userID := req.UserID
	if userID == "" {
		userID = principal.User.ID
	}
	start, err := time.ParseInLocation(clock.DateLayout, req.StartDate, time.Local)
	if err != nil {
		return apperrors.NewValidationError("startDate must be YYYY-MM-DD", nil)
	}
	end, err := time.ParseInLocation(clock.DateLayout, req.EndDate, time.Local)
	if err != nil {
		return apperrors.NewValidationError("endDate must be YYYY-MM-DD", nil)
	}

	leave, err := h.leaves.Create(c.Context(), service.LeaveCreateInput{
		UserID:    userID,
		LeaveType: domain.LeaveType(req.LeaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Leave added successfully",
		"leave":   leaveResponse(&domain.LeaveWithMeta{Leave: *leave}),
	})
}

// List handles GET /api/leave?userId=.
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	leaves, err := h.leaves.List(c.Context(), principal.User.ID, principal.Role, c.Query("userId"))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		items = append(items, leaveResponse(&leaves[i]))
	}
	return c.JSON(fiber.Map{"success": true, "leaves": items})
}

// UpdateStatus handles PUT /api/leave/:id/status, admin-only.
func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.LeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	leave, err := h.leaves.UpdateStatus(c.Context(), c.Params("id"), domain.LeaveStatus(req.Status), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Leave status updated.",
		"leave":   leaveResponse(&domain.LeaveWithMeta{Leave: *leave}),
	})
}

func leaveResponse(lv *domain.LeaveWithMeta) dto.LeaveResponse {
	resp := dto.LeaveResponse{
		ID:        lv.ID,
		UserID:    lv.UserID,
		LeaveType: string(lv.LeaveType),
		StartDate: clock.DateString(lv.StartDate),
		EndDate:   clock.DateString(lv.EndDate),
		Reason:    lv.Reason,
		Status:    string(lv.Status),
	}
	if lv.EmployeeName != "" || lv.EmployeeNumber != "" || lv.DepartmentName != "" {
		resp.Employee = &dto.EmployeeMeta{
			EmployeeID:   lv.EmployeeNumber,
			EmployeeName: lv.EmployeeName,
			Department:   lv.DepartmentName,
		}
	}
	return resp
}
