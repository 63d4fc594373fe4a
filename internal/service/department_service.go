package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// DepartmentService manages department records.
type DepartmentService struct {
	departments repository.DepartmentRepository
}

// NewDepartmentService builds the service.
func NewDepartmentService(departments repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// Create adds a department. Names are unique.
func (s *DepartmentService) Create(ctx context.Context, name, description string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("department name required", nil)
	}

	dept := &domain.Department{Name: name, Description: description}
	if err := s.departments.Create(ctx, dept); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("DEPARTMENT_EXISTS", "department with this name already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return dept, nil
}

// Update edits a department.
func (s *DepartmentService) Update(ctx context.Context, id, name, description string) (*domain.Department, error) {
	dept, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name != "" {
		dept.Name = name
	}
	dept.Description = description
	if err := s.departments.Update(ctx, dept); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("DEPARTMENT_EXISTS", "department with this name already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return dept, nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("department", nil)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Get returns one department.
func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.getByID(ctx, id)
}

// List returns all departments.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) getByID(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return dept, nil
}
