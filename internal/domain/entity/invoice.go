package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice.
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

// InvoiceLine línea de detalle de una factura.
// Total se toma tal cual lo envía el cliente; no se valida contra Quantity × UnitPrice.
type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice representa una factura de venta.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"` // secuencial: INV-{año}-{n}
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	Lines         []InvoiceLine   `json:"items"`
	Total         decimal.Decimal `json:"total"` // suma exacta de los totales de línea
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
