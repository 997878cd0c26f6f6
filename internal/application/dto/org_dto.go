package dto

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// SetupCompleteRequest entrada de POST /setup/complete. Patch parcial de la organización.
type SetupCompleteRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Industry string `json:"industry"`
	TaxID    string `json:"taxId"`
}

// UpgradeRequest entrada de POST /subscription/upgrade.
type UpgradeRequest struct {
	PlanID        string `json:"planId"`
	PaymentMethod string `json:"paymentMethod"`
}

// PurchaseAddonRequest entrada de POST /addons/purchase.
type PurchaseAddonRequest struct {
	AddonID       string `json:"addonId"`
	PaymentMethod string `json:"paymentMethod"`
}

// BillingResponse salida de upgrade y compra de add-on: mensaje de éxito más la
// organización ya mutada (la mutación es autoritativa en el servidor, el cliente
// no tiene que aplicar el cambio de forma optimista).
type BillingResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Organization *entity.Organization `json:"organization"`
}
