package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// UserRepository define el puerto de acceso a los usuarios.
type UserRepository interface {
	List() ([]entity.User, error)
	GetByID(id string) (*entity.User, error)
	// FindByEmail devuelve nil (sin error) si no existe.
	FindByEmail(email string) (*entity.User, error)
	// First devuelve el primer usuario de la colección, o nil si está vacía.
	First() (*entity.User, error)
	Create(user *entity.User) error
	Delete(id string) error
}
