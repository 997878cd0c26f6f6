package dto

import "github.com/shopspring/decimal"

// CreateLeadRequest entrada de POST /leads.
type CreateLeadRequest struct {
	Name    string          `json:"name"`
	Company string          `json:"company"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Source  string          `json:"source"`
	Status  string          `json:"status"`
	Value   decimal.Decimal `json:"value"`
}

// CreateContactRequest entrada de POST /contacts.
type CreateContactRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Company string   `json:"company"`
	Tags    []string `json:"tags"`
}

// CreateTicketRequest entrada de POST /tickets.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	ContactID   string `json:"contactId"`
}
