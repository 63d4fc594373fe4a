package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// EmployeeCreateInput describes the employee onboarding payload.
type EmployeeCreateInput struct {
	Name          string
	Email         string
	Password      string
	EmployeeID    string
	DOB           time.Time
	Gender        string
	MaritalStatus string
	Designation   string
	DepartmentID  string
	Salary        float64
	Image         string
	Role          domain.Role
}

// EmployeeUpdateInput describes editable employee fields.
type EmployeeUpdateInput struct {
	Name          string
	Email         string
	DOB           *time.Time
	Gender        string
	MaritalStatus string
	Designation   string
	DepartmentID  string
	Salary        *float64
	Image         string
}

// EmployeeService manages employee records and their linked accounts.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	bcryptCost  int
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, departments repository.DepartmentRepository, bcryptCost int) *EmployeeService {
	return &EmployeeService{employees: employees, departments: departments, bcryptCost: bcryptCost}
}

// Create onboards an employee: the user account and the employee record are
// inserted atomically.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" || input.EmployeeID == "" ||
		input.Gender == "" || input.MaritalStatus == "" || input.Designation == "" ||
		input.DepartmentID == "" || input.DOB.IsZero() {
		return nil, apperrors.NewValidationError("all employee fields are required", nil)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("role must be one of: admin, manager, employee", nil)
	}

	if _, err := s.departments.GetByID(ctx, input.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		ProfileImage: input.Image,
	}
	emp := &domain.Employee{
		EmployeeID:    input.EmployeeID,
		Name:          input.Name,
		Email:         input.Email,
		DOB:           input.DOB,
		Gender:        input.Gender,
		MaritalStatus: input.MaritalStatus,
		Designation:   input.Designation,
		DepartmentID:  input.DepartmentID,
		Salary:        input.Salary,
		Image:         input.Image,
	}

	if err := s.employees.CreateWithUser(ctx, user, emp); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("EMPLOYEE_EXISTS", "employee with this email or employee id already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return emp, nil
}

// Update edits an employee record.
func (s *EmployeeService) Update(ctx context.Context, id string, input EmployeeUpdateInput) (*domain.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(input.Name); v != "" {
		emp.Name = v
	}
	if v := strings.TrimSpace(input.Email); v != "" {
		emp.Email = v
	}
	if input.DOB != nil {
		emp.DOB = *input.DOB
	}
	if input.Gender != "" {
		emp.Gender = input.Gender
	}
	if input.MaritalStatus != "" {
		emp.MaritalStatus = input.MaritalStatus
	}
	if input.Designation != "" {
		emp.Designation = input.Designation
	}
	if input.DepartmentID != "" {
		if _, err := s.departments.GetByID(ctx, input.DepartmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("department", nil)
			}
			return nil, apperrors.NewInternalError(err)
		}
		emp.DepartmentID = input.DepartmentID
	}
	if input.Salary != nil {
		emp.Salary = *input.Salary
	}
	if input.Image != "" {
		emp.Image = input.Image
	}

	if err := s.employees.Update(ctx, emp); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("EMPLOYEE_EXISTS", "employee with this email already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return emp, nil
}

// Get returns one employee.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return emp, nil
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}
