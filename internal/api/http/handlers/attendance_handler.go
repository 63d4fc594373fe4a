package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// AttendanceHandler exposes QR issuance, scanning and attendance queries.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendanceService}
}

// Generate handles POST /api/attendance/generate?force=<bool>, admin-only.
func (h *AttendanceHandler) Generate(c *fiber.Ctx) error {
	forceNew := c.Query("force") == "true"

	result, err := h.attendance.IssueToken(c.Context(), h.attendance.Today(), forceNew)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(dto.GenerateTokenResponse{
		Success:     true,
		Token:       result.Credential,
		Date:        result.Date,
		Regenerated: result.Regenerated,
	})
}

// Scan handles POST /api/attendance/scan for any authenticated identity.
func (h *AttendanceHandler) Scan(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.QR == "" {
		return apperrors.NewValidationError("no QR provided", nil)
	}

	att, err := h.attendance.VerifyAndRecord(c.Context(), req.QR, principal.User.ID)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Attendance recorded",
		"attendance": attendanceRecord(att),
	})
}

// List handles GET /api/attendance?date=&userId=.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	filter := domain.AttendanceFilter{
		Date:   c.Query("date"),
		UserID: c.Query("userId"),
	}
	records, err := h.attendance.ListAttendance(c.Context(), principal.User.ID, principal.Role, filter)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.AttendanceRecord, 0, len(records))
	for i := range records {
		items = append(items, attendanceRecord(&records[i]))
	}
	return c.JSON(fiber.Map{"success": true, "attendance": items})
}

func attendanceRecord(att *domain.Attendance) dto.AttendanceRecord {
	return dto.AttendanceRecord{
		ID:         att.ID,
		UserID:     att.UserID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date,
		Time:       att.Time,
		Method:     att.Method,
	}
}
