package entity

import "github.com/shopspring/decimal"

// RevenuePoint un punto de la serie de ingresos {periodo, monto}.
type RevenuePoint struct {
	Period string          `json:"period"` // ej: "2026-03"
	Amount decimal.Decimal `json:"amount"`
}

// BusinessMetrics agregado derivado que alimenta el dashboard.
// Los cuatro escalares se recalculan tras cada mutación relevante
// (ver analytics.Recalculator); RevenueTrend proviene del fixture y
// solo se vacía en el reset de tenant.
type BusinessMetrics struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	ActiveLeads     int             `json:"activeLeads"`
	PendingInvoices int             `json:"pendingInvoices"`
	LowStockItems   int             `json:"lowStockItems"`
	RevenueTrend    []RevenuePoint  `json:"revenueTrend"`
}
