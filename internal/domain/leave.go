package domain

import "time"

// LeaveType enumerates supported leave categories.
type LeaveType string

const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeAnnual LeaveType = "annual"
)

// ValidLeaveType reports whether t is a known leave type.
func ValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeAnnual:
		return true
	}
	return false
}

// LeaveStatus enumerates the leave approval workflow states.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// ValidLeaveStatus reports whether s is a known status.
func ValidLeaveStatus(s LeaveStatus) bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// Leave is a request for time off.
type Leave struct {
	ID        string
	UserID    string
	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    LeaveStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveWithMeta enriches a leave with denormalized employee details for listings.
type LeaveWithMeta struct {
	Leave
	EmployeeName   string
	EmployeeNumber string
	DepartmentName string
}
