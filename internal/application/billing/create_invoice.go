package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// CreateInvoiceUseCase creación de facturas de venta.
type CreateInvoiceUseCase struct {
	invoices repository.InvoiceRepository
	ids      repository.IDGenerator
	recalc   *analytics.Recalculator
	now      func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(invoices repository.InvoiceRepository, ids repository.IDGenerator, recalc *analytics.Recalculator) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoices: invoices, ids: ids, recalc: recalc, now: time.Now}
}

// Execute crea la factura:
//   - invoiceNumber secuencial INV-{año}-{n}, derivado del tamaño actual de la
//     colección (las facturas nunca se borran, así que es único en la sesión).
//   - total = suma EXACTA de los totales de línea enviados; no se valida que
//     cada total coincida con quantity × unitPrice.
//   - la factura se antepone (más reciente primero) y se recalculan métricas.
func (uc *CreateInvoiceUseCase) Execute(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	count, err := uc.invoices.Count()
	if err != nil {
		return nil, err
	}
	now := uc.now()

	lines := make([]entity.InvoiceLine, 0, len(in.Lines))
	total := decimal.Zero
	for _, l := range in.Lines {
		lines = append(lines, entity.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
		total = total.Add(l.Total)
	}

	status := in.Status
	switch status {
	case entity.InvoicePaid, entity.InvoicePending, entity.InvoiceOverdue:
	default:
		status = entity.InvoicePending
	}

	due := now.AddDate(0, 0, 30)
	if in.DueDate != nil {
		due = *in.DueDate
	}

	inv := &entity.Invoice{
		ID:            uc.ids.NewID(repository.PrefixInvoice),
		InvoiceNumber: fmt.Sprintf("INV-%d-%04d", now.Year(), count+1),
		ClientID:      in.ClientID,
		ClientName:    in.ClientName,
		Lines:         lines,
		Total:         total,
		Status:        status,
		DueDate:       due,
		CreatedAt:     now,
	}
	if status == entity.InvoicePaid {
		paidAt := now
		inv.PaidAt = &paidAt
	}

	if err := uc.invoices.Create(inv); err != nil {
		return nil, err
	}
	if _, err := uc.recalc.Recalculate(); err != nil {
		return nil, err
	}
	return inv, nil
}
