package dto

// CreateUserRequest entrada de POST /users. El usuario nace en estado pending.
type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
