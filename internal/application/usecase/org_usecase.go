package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// OrgUseCase lectura de la organización y flujo de configuración inicial.
type OrgUseCase struct {
	orgRepo repository.OrganizationRepository
}

// NewOrgUseCase construye el caso de uso.
func NewOrgUseCase(orgRepo repository.OrganizationRepository) *OrgUseCase {
	return &OrgUseCase{orgRepo: orgRepo}
}

// Get devuelve la organización actual. El ID de la ruta se acepta pero no se
// usa: hay exactamente una organización por sesión.
func (uc *OrgUseCase) Get() (*entity.Organization, error) {
	return uc.orgRepo.Get()
}

// SetupReset vuelve el estado de configuración a pending sin tocar ninguna
// otra colección. Existe para repetir el asistente de onboarding en demos.
func (uc *OrgUseCase) SetupReset() (*entity.Organization, error) {
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	org.SetupStatus = entity.SetupPending
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return org, nil
}

// SetupComplete aplica el patch del asistente (nombre, moneda, industria, NIT)
// y deja la organización en estado complete. Campos vacíos no pisan valores.
func (uc *OrgUseCase) SetupComplete(in dto.SetupCompleteRequest) (*entity.Organization, error) {
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		org.Name = in.Name
	}
	if in.Currency != "" {
		org.Currency = in.Currency
	}
	if in.Industry != "" {
		org.Industry = in.Industry
	}
	if in.TaxID != "" {
		org.TaxID = in.TaxID
	}
	org.SetupStatus = entity.SetupComplete
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return org, nil
}
