package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// Recalculator recalcula los escalares de BusinessMetrics a partir del estado
// actual de las colecciones. Los cuatro campos se recalculan juntos en cada
// mutación relevante para que el agregado nunca quede parcialmente obsoleto.
// RevenueTrend no se toca: es serie del fixture.
type Recalculator struct {
	items    repository.ItemRepository
	invoices repository.InvoiceRepository
	leads    repository.LeadRepository
	metrics  repository.MetricsRepository
}

// NewRecalculator construye el recalculador.
func NewRecalculator(
	items repository.ItemRepository,
	invoices repository.InvoiceRepository,
	leads repository.LeadRepository,
	metrics repository.MetricsRepository,
) *Recalculator {
	return &Recalculator{items: items, invoices: invoices, leads: leads, metrics: metrics}
}

// Recalculate recorre las colecciones completas y persiste el agregado.
// Debe invocarse DESPUÉS de la mutación, de modo que la siguiente lectura
// del dashboard ya vea los valores nuevos.
func (r *Recalculator) Recalculate() (*entity.BusinessMetrics, error) {
	m, err := r.metrics.Get()
	if err != nil {
		return nil, err
	}

	items, err := r.items.List()
	if err != nil {
		return nil, err
	}
	lowStock := 0
	for _, it := range items {
		if it.LowStock() {
			lowStock++
		}
	}

	invoices, err := r.invoices.List()
	if err != nil {
		return nil, err
	}
	pending := 0
	revenue := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == entity.InvoicePending {
			pending++
		}
		if inv.Status == entity.InvoicePaid {
			revenue = revenue.Add(inv.Total)
		}
	}

	leads, err := r.leads.List()
	if err != nil {
		return nil, err
	}
	active := 0
	for _, l := range leads {
		if l.Active() {
			active++
		}
	}

	m.LowStockItems = lowStock
	m.PendingInvoices = pending
	m.TotalRevenue = revenue
	m.ActiveLeads = active

	if err := r.metrics.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}
