package billing

import (
	"fmt"
	"time"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// planLimits límites de asientos y recursos por plan. Max = -1 es ilimitado.
var planLimits = map[string]map[string]entity.UsageLimit{
	entity.PlanFree: {
		"staff":    {Max: 1},
		"invoices": {Max: 20},
		"storage":  {Max: 5},
	},
	entity.PlanStarter: {
		"staff":    {Max: 5},
		"invoices": {Max: 100},
		"storage":  {Max: -1},
	},
	entity.PlanPro: {
		"staff":    {Max: -1},
		"invoices": {Max: -1},
		"storage":  {Max: -1},
	},
}

// addonCatalog add-ons comprables. El valor es la descripción para el mensaje de éxito.
var addonCatalog = map[string]string{
	"reports-plus":   "Reportes avanzados",
	"multi-branch":   "Multi-sucursal",
	"api-access":     "Acceso API",
	"priority-suppt": "Soporte prioritario",
}

// SubscriptionUseCase upgrade de plan y compra de add-ons.
//
// La mutación es AUTORITATIVA: la organización queda actualizada en el store
// antes de responder, y la respuesta incluye la organización resultante. El
// cliente no tiene que aplicar el cambio de forma optimista ni puede quedar
// desincronizado del servidor.
type SubscriptionUseCase struct {
	orgRepo repository.OrganizationRepository
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(orgRepo repository.OrganizationRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{orgRepo: orgRepo}
}

// Upgrade cambia el plan de la suscripción y ajusta los límites del plan nuevo
// preservando los contadores current.
func (uc *SubscriptionUseCase) Upgrade(in dto.UpgradeRequest) (*dto.BillingResponse, error) {
	limits, ok := planLimits[in.PlanID]
	if !ok {
		return nil, domain.ErrUnknownPlan
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	org.Plan = in.PlanID
	org.Subscription.PlanID = in.PlanID
	org.Subscription.Status = "active"
	org.Subscription.StartDate = now
	org.Subscription.EndDate = nil
	org.Subscription.AutoRenew = true
	for name, lim := range limits {
		cur := org.Limits[name].Current
		org.Limits[name] = entity.UsageLimit{Current: cur, Max: lim.Max}
	}
	org.UpdatedAt = now

	if err := uc.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return &dto.BillingResponse{
		Success:      true,
		Message:      fmt.Sprintf("Suscripción actualizada al plan %s", in.PlanID),
		Organization: org,
	}, nil
}

// PurchaseAddon desbloquea un add-on para la organización. Comprar un add-on
// ya desbloqueado es idempotente.
func (uc *SubscriptionUseCase) PurchaseAddon(in dto.PurchaseAddonRequest) (*dto.BillingResponse, error) {
	desc, ok := addonCatalog[in.AddonID]
	if !ok {
		return nil, domain.ErrUnknownAddon
	}
	org, err := uc.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	if !org.HasAddon(in.AddonID) {
		org.Addons = append(org.Addons, in.AddonID)
	}
	org.UpdatedAt = time.Now()
	if err := uc.orgRepo.Save(org); err != nil {
		return nil, err
	}
	return &dto.BillingResponse{
		Success:      true,
		Message:      fmt.Sprintf("Add-on desbloqueado: %s", desc),
		Organization: org,
	}, nil
}
