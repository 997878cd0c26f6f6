package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada de POST /items.
// Los campos numéricos aceptan número o string numérico (coerción explícita).
type CreateItemRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellPrice    decimal.Decimal `json:"sellPrice"`
	StockLevel   FlexInt         `json:"stockLevel"`
	ReorderLevel FlexInt         `json:"reOrderLevel"`
}

// InvoiceLineRequest línea de factura tal como la envía el cliente.
// Total se toma tal cual; no se valida contra Quantity × UnitPrice.
type InvoiceLineRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// CreateInvoiceRequest entrada de POST /invoices.
type CreateInvoiceRequest struct {
	ClientID   string               `json:"clientId"`
	ClientName string               `json:"clientName"`
	Lines      []InvoiceLineRequest `json:"items"`
	Status     string               `json:"status"`
	DueDate    *time.Time           `json:"dueDate"`
}

// CreateQuotationRequest entrada de POST /quotations.
type CreateQuotationRequest struct {
	LeadID     string          `json:"leadId"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	ValidUntil *time.Time      `json:"validUntil"`
}
