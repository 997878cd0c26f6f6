package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrEmailRequired  = errors.New("email es requerido")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrLimitReached   = errors.New("límite del plan alcanzado")
	ErrUnknownPlan    = errors.New("plan desconocido")
	ErrUnknownAddon   = errors.New("add-on desconocido")
)
