package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign representa una campaña de marketing.
type Campaign struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Channel   string          `json:"channel"` // email, social, ads
	Status    string          `json:"status"`  // draft, active, finished
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Leads     int             `json:"leads"`
	StartDate time.Time       `json:"startDate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Notification representa una notificación del sistema para el usuario.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"` // info, warning, alert
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
