package dto

// EmployeeRequest payload for onboarding and updates. Dates use YYYY-MM-DD.
type EmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password,omitempty"`
	EmployeeID    string  `json:"employeeId"`
	DOB           string  `json:"dob"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"maritalStatus"`
	Designation   string  `json:"designation"`
	DepartmentID  string  `json:"department"`
	Salary        float64 `json:"salary"`
	Image         string  `json:"image"`
	Role          string  `json:"role,omitempty"`
}

// EmployeeResponse is the wire form of an employee.
type EmployeeResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	EmployeeID    string  `json:"employeeId"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	DOB           string  `json:"dob"`
	Gender        string  `json:"gender"`
	MaritalStatus string  `json:"maritalStatus"`
	Designation   string  `json:"designation"`
	DepartmentID  string  `json:"department"`
	Salary        float64 `json:"salary"`
	Image         string  `json:"image,omitempty"`
}
