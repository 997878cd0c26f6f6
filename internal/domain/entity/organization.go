package entity

import "time"

// Estados de configuración inicial de la organización.
const (
	SetupPending  = "pending"
	SetupComplete = "complete"
)

// Planes de suscripción disponibles.
const (
	PlanFree    = "free"
	PlanStarter = "starter"
	PlanPro     = "pro"
)

// Módulos del sistema activables por organización.
const (
	ModuleSales      = "sales"
	ModuleInventory  = "inventory"
	ModuleFinance    = "finance"
	ModuleHR         = "hr"
	ModuleOperations = "operations"
	ModuleMarketing  = "marketing"
	ModuleComms      = "communications"
)

// UsageLimit par {current,max} de un recurso del plan. Max = -1 significa ilimitado.
type UsageLimit struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Allows informa si el límite admite un consumo más.
func (l UsageLimit) Allows() bool {
	return l.Max == -1 || l.Current < l.Max
}

// Subscription registro de suscripción de la organización.
type Subscription struct {
	PlanID    string     `json:"planId"`
	Status    string     `json:"status"` // active, trial, cancelled
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	AutoRenew bool       `json:"autoRenew"`
}

// Organization representa el tenant activo de la sesión.
// Invariante: existe exactamente UNA organización en el store; el signup la reemplaza completa.
type Organization struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Plan         string                `json:"plan"`
	Currency     string                `json:"currency"`
	Timezone     string                `json:"timezone"`
	SetupStatus  string                `json:"setupStatus"` // pending | complete
	Industry     string                `json:"industry"`
	TaxID        string                `json:"taxId"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Address      string                `json:"address"`
	Subscription Subscription          `json:"subscription"`
	Limits       map[string]UsageLimit `json:"limits"`
	Addons       []string              `json:"addons"`
	Modules      map[string]bool       `json:"modules"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// Clone devuelve una copia profunda: los mapas de límites y módulos y el
// slice de add-ons no comparten memoria con el receptor. Una copia por
// asignación compartiría los map headers, y quien la mute estaría escribiendo
// sobre el registro original.
func (o *Organization) Clone() *Organization {
	cp := *o
	if o.Limits != nil {
		cp.Limits = make(map[string]UsageLimit, len(o.Limits))
		for k, v := range o.Limits {
			cp.Limits[k] = v
		}
	}
	if o.Modules != nil {
		cp.Modules = make(map[string]bool, len(o.Modules))
		for k, v := range o.Modules {
			cp.Modules[k] = v
		}
	}
	if o.Addons != nil {
		cp.Addons = append([]string(nil), o.Addons...)
	}
	return &cp
}

// HasAddon informa si la organización tiene desbloqueado el add-on.
func (o *Organization) HasAddon(addonID string) bool {
	for _, a := range o.Addons {
		if a == addonID {
			return true
		}
	}
	return false
}
