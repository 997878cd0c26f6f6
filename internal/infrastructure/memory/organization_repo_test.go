package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

// Mutar la organización devuelta por Get no debe tocar el estado del store:
// los mapas de límites y módulos y el slice de add-ons tienen que ser copias.
func TestOrganizationRepo_GetDevuelveCopiaProfunda(t *testing.T) {
	repo := memory.NewOrganizationRepository(memory.NewStore())

	copia, err := repo.Get()
	require.NoError(t, err)

	copia.Modules[entity.ModuleHR] = true
	staff := copia.Limits["staff"]
	staff.Current = 99
	copia.Limits["staff"] = staff
	copia.Addons[0] = "hackeado"

	otra, err := repo.Get()
	require.NoError(t, err)
	assert.False(t, otra.Modules[entity.ModuleHR], "el módulo hr sigue apagado en el store")
	assert.Equal(t, 2, otra.Limits["staff"].Current, "el cupo de staff no cambió")
	assert.Equal(t, "reports-plus", otra.Addons[0])
}

// Tras Save, el llamador no conserva referencias al estado guardado.
func TestOrganizationRepo_SaveNoComparteMemoria(t *testing.T) {
	repo := memory.NewOrganizationRepository(memory.NewStore())

	org, err := repo.Get()
	require.NoError(t, err)
	org.Modules[entity.ModuleHR] = true
	require.NoError(t, repo.Save(org))

	// Mutaciones posteriores sobre el puntero del llamador no se filtran.
	org.Modules[entity.ModuleHR] = false
	org.Limits["staff"] = entity.UsageLimit{Current: 0, Max: 0}

	guardada, err := repo.Get()
	require.NoError(t, err)
	assert.True(t, guardada.Modules[entity.ModuleHR], "queda lo que se guardó, no la mutación posterior")
	assert.Equal(t, 5, guardada.Limits["staff"].Max)
}

// Reset tampoco debe quedar aliasado a la organización que recibe.
func TestTenantRepo_ResetNoComparteMemoria(t *testing.T) {
	store := memory.NewStore()
	tenants := memory.NewTenantRepository(store)
	orgs := memory.NewOrganizationRepository(store)

	nueva := &entity.Organization{
		ID:          "org-1",
		SetupStatus: entity.SetupPending,
		Limits:      map[string]entity.UsageLimit{"staff": {Current: 1, Max: 1}},
		Modules:     map[string]bool{entity.ModuleSales: true},
	}
	admin := &entity.User{ID: "usr-1", Role: entity.RoleAdmin, Status: "active"}
	require.NoError(t, tenants.Reset(nueva, admin))

	nueva.Modules[entity.ModuleSales] = false
	nueva.Limits["staff"] = entity.UsageLimit{Current: 9, Max: 9}

	actual, err := orgs.Get()
	require.NoError(t, err)
	assert.True(t, actual.Modules[entity.ModuleSales])
	assert.Equal(t, entity.UsageLimit{Current: 1, Max: 1}, actual.Limits["staff"])
}
