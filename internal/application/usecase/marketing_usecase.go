package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// MarketingUseCase creación de campañas y gestión de notificaciones.
type MarketingUseCase struct {
	campaigns     repository.CampaignRepository
	notifications repository.NotificationRepository
	ids           repository.IDGenerator
}

// NewMarketingUseCase construye el caso de uso.
func NewMarketingUseCase(
	campaigns repository.CampaignRepository,
	notifications repository.NotificationRepository,
	ids repository.IDGenerator,
) *MarketingUseCase {
	return &MarketingUseCase{campaigns: campaigns, notifications: notifications, ids: ids}
}

// CreateCampaign crea una campaña (antepuesta: más reciente primero).
func (uc *MarketingUseCase) CreateCampaign(in dto.CreateCampaignRequest) (*entity.Campaign, error) {
	now := time.Now()
	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}
	status := in.Status
	if status == "" {
		status = "draft"
	}
	c := &entity.Campaign{
		ID:        uc.ids.NewID(repository.PrefixCampaign),
		Name:      in.Name,
		Channel:   in.Channel,
		Status:    status,
		Budget:    in.Budget,
		Spent:     decimal.Zero,
		Leads:     0,
		StartDate: start,
		CreatedAt: now,
	}
	if err := uc.campaigns.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// MarkRead marca una notificación por ID, o todas si target es el literal "all".
// Idempotente: marcar dos veces deja el mismo estado y nunca falla sobre
// una colección vacía.
func (uc *MarketingUseCase) MarkRead(target string) (*dto.MarkReadResponse, error) {
	if target == "all" {
		n, err := uc.notifications.MarkAllRead()
		if err != nil {
			return nil, err
		}
		return &dto.MarkReadResponse{Success: true, Updated: n}, nil
	}
	if _, err := uc.notifications.MarkRead(target); err != nil {
		return nil, err
	}
	return &dto.MarkReadResponse{Success: true, Updated: 1}, nil
}
