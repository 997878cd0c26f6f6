package dto

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// LoginRequest entrada de POST /auth/login.
// password se acepta pero no se verifica: el backend es un simulador de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest entrada de POST /auth/signup. Dispara el reset completo del tenant.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// AuthResponse salida de login y signup: token de acceso + usuario de la sesión.
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        entity.User `json:"user"`
}
