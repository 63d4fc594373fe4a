package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/clock"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// EmployeeHandler exposes employee onboarding and lookups.
type EmployeeHandler struct {
	employees *service.EmployeeService
	photos    service.PhotoStorage
}

// NewEmployeeHandler constructs handler.
func NewEmployeeHandler(employeeService *service.EmployeeService, photos service.PhotoStorage) *EmployeeHandler {
	return &EmployeeHandler{employees: employeeService, photos: photos}
}

// Create handles POST /api/employee, admin-only. Accepts JSON, or multipart
// form data with an optional "image" file uploaded to object storage.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	image := req.Image
	if file, err := c.FormFile("image"); err == nil && file != nil && h.photos != nil {
		src, err := file.Open()
		if err != nil {
			return apperrors.NewValidationError("unreadable image file", nil)
		}
		defer src.Close()
		objectKey, err := h.photos.Upload(c.Context(), req.EmployeeID, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		url, err := h.photos.PresignedURL(c.Context(), objectKey)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		image = url
	}

	dob, err := time.ParseInLocation(clock.DateLayout, req.DOB, time.Local)
	if err != nil {
		return apperrors.NewValidationError("dob must be YYYY-MM-DD", nil)
	}

	emp, err := h.employees.Create(c.Context(), service.EmployeeCreateInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		EmployeeID:    req.EmployeeID,
		DOB:           dob,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		Designation:   req.Designation,
		DepartmentID:  req.DepartmentID,
		Salary:        req.Salary,
		Image:         image,
		Role:          domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Employee added successfully",
		"employee": employeeResponse(emp),
	})
}

// List handles GET /api/employee.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"success": true, "employees": items})
}

// Get handles GET /api/employee/:id.
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	emp, err := h.employees.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "employee": employeeResponse(emp)})
}

// Update handles PUT /api/employee/:id, admin-only.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.EmployeeUpdateInput{
		Name:          req.Name,
		Email:         req.Email,
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		Designation:   req.Designation,
		DepartmentID:  req.DepartmentID,
		Image:         req.Image,
	}
	if req.DOB != "" {
		dob, err := time.ParseInLocation(clock.DateLayout, req.DOB, time.Local)
		if err != nil {
			return apperrors.NewValidationError("dob must be YYYY-MM-DD", nil)
		}
		input.DOB = &dob
	}
	if req.Salary > 0 {
		salary := req.Salary
		input.Salary = &salary
	}

	emp, err := h.employees.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Employee updated successfully",
		"employee": employeeResponse(emp),
	})
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:            emp.ID,
		UserID:        emp.UserID,
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		Email:         emp.Email,
		DOB:           clock.DateString(emp.DOB),
		Gender:        emp.Gender,
		MaritalStatus: emp.MaritalStatus,
		Designation:   emp.Designation,
		DepartmentID:  emp.DepartmentID,
		Salary:        emp.Salary,
		Image:         emp.Image,
	}
}
