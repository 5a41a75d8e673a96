package models

import "time"

// Role enumerates the kinds of users the platform knows about.
type Role string

const (
	RoleStudent        Role = "student"
	RoleAdministration Role = "administration"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdministration
}

// User represents a platform user. Email and CreatedAt are immutable after
// creation; MedicalApproved is only written by the explicit approval
// operation.
type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	Role            Role      `db:"role"`
	MedicalApproved bool      `db:"medical_approved"`
	CreatedAt       time.Time `db:"created_at"`
}

// UserResource is the external read model for a user.
type UserResource struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	MedicalApproved bool      `json:"medical_approved"`
	CreatedAt       time.Time `json:"created_at"`
}
