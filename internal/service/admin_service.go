package service

import (
	"context"

	"github.com/spec-kit/hr-service/internal/clock"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// DashboardStats summarizes the organization for the admin dashboard.
type DashboardStats struct {
	Users           int64       `json:"users"`
	Employees       int64       `json:"employees"`
	Departments     int64       `json:"departments"`
	MonthlySalary   float64     `json:"monthlySalary"`
	AttendanceToday int64       `json:"attendanceToday"`
	Leaves          LeaveCounts `json:"leaves"`
}

// LeaveCounts breaks down leaves by workflow state.
type LeaveCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// AdminService aggregates dashboard metrics.
type AdminService struct {
	users       repository.UserRepository
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	attendance  repository.AttendanceRepository
	leaves      repository.LeaveRepository
	clk         clock.Clock
}

// AdminDependencies bundles repositories for the admin service.
type AdminDependencies struct {
	UserRepo       repository.UserRepository
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	AttendanceRepo repository.AttendanceRepository
	LeaveRepo      repository.LeaveRepository
	Clock          clock.Clock
}

// NewAdminService builds the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System{}
	}
	return &AdminService{
		users:       deps.UserRepo,
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		attendance:  deps.AttendanceRepo,
		leaves:      deps.LeaveRepo,
		clk:         clk,
	}
}

// Stats collects the dashboard summary.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	employees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	departments, err := s.departments.Count(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	salary, err := s.employees.SumSalaries(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	attendanceToday, err := s.attendance.CountByDate(ctx, clock.DateString(s.clk.Now()))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	leaveCounts, err := s.leaves.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	leaves := LeaveCounts{
		Pending:  leaveCounts[domain.LeaveStatusPending],
		Approved: leaveCounts[domain.LeaveStatusApproved],
		Rejected: leaveCounts[domain.LeaveStatusRejected],
	}
	leaves.Total = leaves.Pending + leaves.Approved + leaves.Rejected

	return &DashboardStats{
		Users:           users,
		Employees:       employees,
		Departments:     departments,
		MonthlySalary:   salary,
		AttendanceToday: attendanceToday,
		Leaves:          leaves,
	}, nil
}
