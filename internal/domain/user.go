package domain

import "time"

// Role enumerates the access levels an account can hold.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User is the domain model for an account that can authenticate.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
