package dto

// DepartmentRequest payload for create/update.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DepartmentResponse is the wire form of a department.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
