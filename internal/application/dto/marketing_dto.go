package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampaignRequest entrada de POST /marketing/campaigns.
type CreateCampaignRequest struct {
	Name      string          `json:"name"`
	Channel   string          `json:"channel"`
	Status    string          `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	StartDate *time.Time      `json:"startDate"`
}

// MarkReadResponse salida de POST /notifications/mark-read/{id|all}.
type MarkReadResponse struct {
	Success bool `json:"success"`
	Updated int  `json:"updated"`
}
