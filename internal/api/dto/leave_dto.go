package dto

// LeaveRequest payload for filing leave. Dates use YYYY-MM-DD.
type LeaveRequest struct {
	UserID    string `json:"userId,omitempty"`
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// LeaveStatusRequest payload for the approval workflow.
type LeaveStatusRequest struct {
	Status string `json:"status"`
}

// LeaveResponse is the wire form of a leave request.
type LeaveResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	LeaveType string        `json:"leaveType"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Reason    string        `json:"reason"`
	Status    string        `json:"status"`
	Employee  *EmployeeMeta `json:"employeeMeta,omitempty"`
}

// EmployeeMeta is the denormalized employee context attached to listings.
type EmployeeMeta struct {
	EmployeeID   string `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	Department   string `json:"department,omitempty"`
}
