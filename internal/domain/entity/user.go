package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Estados válidos para User.
const (
	UserActive  = "active"
	UserPending = "pending"
)

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"orgId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt hash, nunca expuesto
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`   // admin, manager, staff
	Status       string    `json:"status"` // active, pending
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
