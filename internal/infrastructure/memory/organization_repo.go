package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre el store en memoria.
type OrganizationRepo struct {
	store *Store
}

// NewOrganizationRepository construye el adaptador para la organización.
func NewOrganizationRepository(store *Store) *OrganizationRepo {
	return &OrganizationRepo{store: store}
}

// Get devuelve una copia profunda de la organización actual. El clon evita
// que los casos de uso muten mapas del store fuera del mutex.
func (r *OrganizationRepo) Get() (*entity.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.org.Clone(), nil
}

// Save reemplaza la organización completa; clona para que el llamador no
// conserve referencias al estado guardado.
func (r *OrganizationRepo) Save(org *entity.Organization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.org = org.Clone()
	return nil
}
