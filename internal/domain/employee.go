package domain

import "time"

// Employee is the HR record attached to a user account.
type Employee struct {
	ID            string
	UserID        string
	EmployeeID    string
	Name          string
	Email         string
	DOB           time.Time
	Gender        string
	MaritalStatus string
	Designation   string
	DepartmentID  string
	Salary        float64
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
