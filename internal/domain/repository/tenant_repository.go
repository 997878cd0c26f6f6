package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// TenantRepository define el puerto de operaciones a nivel de tenant completo.
// Es el único puerto que toca más de una colección a la vez.
type TenantRepository interface {
	// Reset reemplaza la organización y el usuario admin, vacía TODAS las demás
	// colecciones y pone las métricas en cero. Lo invoca únicamente el signup.
	Reset(org *entity.Organization, admin *entity.User) error
}
