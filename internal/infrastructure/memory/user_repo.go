package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el store en memoria.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// List devuelve una copia de la colección de usuarios.
func (r *UserRepo) List() ([]entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.users), nil
}

// GetByID obtiene un usuario por ID, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByEmail obtiene un usuario por email, o nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// First devuelve el primer usuario de la colección, o nil si está vacía.
func (r *UserRepo) First() (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if len(r.store.users) == 0 {
		return nil, nil
	}
	cp := r.store.users[0]
	return &cp, nil
}

// Create agrega el usuario al final de la colección.
func (r *UserRepo) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users = append(r.store.users, *user)
	return nil
}

// Delete elimina el usuario por ID (filter-remove).
func (r *UserRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}
