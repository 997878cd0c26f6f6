package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

// SetupReset vuelve el asistente a pending sin tocar ninguna otra colección.
func TestSetupReset_SoloCambiaElEstado(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewOrgUseCase(memory.NewOrganizationRepository(s))

	org, err := uc.SetupReset()
	require.NoError(t, err)
	assert.Equal(t, entity.SetupPending, org.SetupStatus)
	assert.Equal(t, "Ferretería El Tornillo", org.Name, "el resto de la organización no cambia")

	items, _ := s.Snapshot("/items")
	assert.Len(t, items.([]entity.Item), 4, "las colecciones quedan intactas")
}

// SetupComplete aplica el patch y deja el estado en complete.
func TestSetupComplete_AplicaPatch(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewOrgUseCase(memory.NewOrganizationRepository(s))

	org, err := uc.SetupComplete(dto.SetupCompleteRequest{
		Name:     "Ferretería El Tornillo SAS",
		Industry: "construcción",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SetupComplete, org.SetupStatus)
	assert.Equal(t, "Ferretería El Tornillo SAS", org.Name)
	assert.Equal(t, "construcción", org.Industry)
	assert.Equal(t, "COP", org.Currency, "los campos vacíos del patch no pisan valores")
}

// Activar y desactivar un módulo queda reflejado en la organización.
func TestModuleService_Toggle(t *testing.T) {
	s := memory.NewStore()
	svc := usecase.NewModuleService(memory.NewOrganizationRepository(s))

	org, err := svc.SetEnabled(entity.ModuleMarketing, true)
	require.NoError(t, err)
	assert.True(t, org.Modules[entity.ModuleMarketing])

	active, err := svc.HasActiveModule(entity.ModuleMarketing)
	require.NoError(t, err)
	assert.True(t, active)

	org, err = svc.SetEnabled(entity.ModuleMarketing, false)
	require.NoError(t, err)
	assert.False(t, org.Modules[entity.ModuleMarketing])
}

// El catálogo de módulos es permisivo: un nombre desconocido se registra igual.
func TestModuleService_NombreDesconocido(t *testing.T) {
	s := memory.NewStore()
	svc := usecase.NewModuleService(memory.NewOrganizationRepository(s))

	org, err := svc.SetEnabled("modulo-futuro", true)
	require.NoError(t, err)
	assert.True(t, org.Modules["modulo-futuro"])
}
