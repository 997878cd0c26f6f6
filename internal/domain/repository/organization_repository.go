package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// OrganizationRepository define el puerto de acceso a la organización singleton.
type OrganizationRepository interface {
	Get() (*entity.Organization, error)
	// Save reemplaza la organización completa (signup) o persiste un patch (setup).
	Save(org *entity.Organization) error
}
