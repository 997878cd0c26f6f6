package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// ModuleService activa y desactiva módulos de la organización. Es el único
// punto de la aplicación que conoce la lógica de activación de módulos.
type ModuleService struct {
	orgRepo repository.OrganizationRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(orgRepo repository.OrganizationRepository) *ModuleService {
	return &ModuleService{orgRepo: orgRepo}
}

// SetEnabled activa o desactiva un módulo y devuelve la organización mutada.
// Un nombre de módulo desconocido simplemente se registra como activado: el
// backend simulado es permisivo con el catálogo.
func (s *ModuleService) SetEnabled(moduleName string, enabled bool) (*entity.Organization, error) {
	org, err := s.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	if org.Modules == nil {
		org.Modules = map[string]bool{}
	}
	org.Modules[moduleName] = enabled
	org.UpdatedAt = time.Now()
	if err := s.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return org, nil
}

// HasActiveModule informa si la organización tiene el módulo activo.
func (s *ModuleService) HasActiveModule(moduleName string) (bool, error) {
	org, err := s.orgRepo.Get()
	if err != nil {
		return false, err
	}
	return org.Modules[moduleName], nil
}
