package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Lead. Un lead se considera "activo" en new, contacted o qualified.
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadQualified = "qualified"
	LeadWon       = "won"
	LeadLost      = "lost"
)

// Lead representa un prospecto comercial.
type Lead struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Company   string          `json:"company"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Source    string          `json:"source"` // web, referral, campaign
	Status    string          `json:"status"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Active informa si el lead cuenta como activo para las métricas.
func (l Lead) Active() bool {
	return l.Status == LeadNew || l.Status == LeadContacted || l.Status == LeadQualified
}

// Quotation representa una cotización enviada a un prospecto o cliente.
type Quotation struct {
	ID         string          `json:"id"`
	LeadID     string          `json:"leadId"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"` // draft, sent, accepted, rejected
	ValidUntil time.Time       `json:"validUntil"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Contact representa un contacto de la libreta de comunicaciones.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ticket representa un caso de soporte.
type Ticket struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"` // low, medium, high
	Status      string    `json:"status"`   // open, in_progress, closed
	ContactID   string    `json:"contactId"`
	CreatedAt   time.Time `json:"createdAt"`
}
