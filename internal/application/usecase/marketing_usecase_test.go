package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

func buildMarketingUC(s *memory.Store) *usecase.MarketingUseCase {
	return usecase.NewMarketingUseCase(memory.NewCampaignRepository(s), memory.NewNotificationRepository(s), s)
}

// Las campañas nuevas arrancan sin gasto ni leads y quedan antepuestas.
func TestCreateCampaign_ValoresIniciales(t *testing.T) {
	s := memory.NewStore()
	uc := buildMarketingUC(s)

	c, err := uc.CreateCampaign(dto.CreateCampaignRequest{
		Name:    "Promo taladros",
		Channel: "social",
		Budget:  decimal.NewFromInt(500000),
	})
	require.NoError(t, err)
	assert.True(t, c.Spent.IsZero())
	assert.Zero(t, c.Leads)
	assert.Equal(t, "draft", c.Status, "status por defecto")

	campaigns, err := memory.NewCampaignRepository(s).List()
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, c.ID, campaigns[0].ID, "la campaña nueva va primero")
}

// MarkRead con un ID concreto marca solo esa notificación.
func TestMarkRead_PorID(t *testing.T) {
	s := memory.NewStore()
	uc := buildMarketingUC(s)

	res, err := uc.MarkRead("ntf-1736931600002")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Updated)

	ntfs, err := memory.NewNotificationRepository(s).List()
	require.NoError(t, err)
	for _, n := range ntfs {
		if n.ID == "ntf-1736931600001" {
			assert.False(t, n.Read, "las demás notificaciones no se tocan")
		}
	}
}

// El literal "all" marca todas, y repetirlo deja el mismo estado.
func TestMarkRead_All_Idempotente(t *testing.T) {
	s := memory.NewStore()
	uc := buildMarketingUC(s)

	res, err := uc.MarkRead("all")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 3, res.Updated)

	res, err = uc.MarkRead("all")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Updated)
}

func TestMarkRead_All_ColeccionVacia(t *testing.T) {
	uc := buildMarketingUC(memory.NewEmptyStore())

	res, err := uc.MarkRead("all")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Updated)
}

func TestMarkRead_IDInexistente(t *testing.T) {
	uc := buildMarketingUC(memory.NewStore())

	_, err := uc.MarkRead("ntf-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
