package billing_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/billing"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
)

func buildInvoiceUC(s *memory.Store) *billing.CreateInvoiceUseCase {
	recalc := analytics.NewRecalculator(
		memory.NewItemRepository(s),
		memory.NewInvoiceRepository(s),
		memory.NewLeadRepository(s),
		memory.NewMetricsRepository(s),
	)
	return billing.NewCreateInvoiceUseCase(memory.NewInvoiceRepository(s), s, recalc)
}

func dec(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// El número de factura es secuencial sobre el tamaño de la colección.
func TestCreateInvoice_NumeroSecuencial(t *testing.T) {
	s := memory.NewStore() // fixture: 3 facturas
	uc := buildInvoiceUC(s)
	year := time.Now().Year()

	inv, err := uc.Execute(dto.CreateInvoiceRequest{ClientName: "Cliente A"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-0004", year), inv.InvoiceNumber)

	inv2, err := uc.Execute(dto.CreateInvoiceRequest{ClientName: "Cliente B"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("INV-%d-0005", year), inv2.InvoiceNumber)
}

// El total es la suma EXACTA de los totales de línea enviados, aunque no
// coincidan con quantity × unitPrice.
func TestCreateInvoice_TotalEsSumaDeLineas(t *testing.T) {
	uc := buildInvoiceUC(memory.NewStore())

	inv, err := uc.Execute(dto.CreateInvoiceRequest{
		ClientName: "Constructora Andina",
		Lines: []dto.InvoiceLineRequest{
			{Description: "Tornillos", Quantity: dec("3"), UnitPrice: dec("15000"), Total: dec("45000")},
			// El total de línea manda aunque no cuadre con qty × precio.
			{Description: "Descuento manual", Quantity: dec("1"), UnitPrice: dec("289000"), Total: dec("250000.50")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "295000.5", inv.Total.String())
}

// La factura nueva queda antepuesta y pendingInvoices se recalcula.
func TestCreateInvoice_AntepuestaYRecalcula(t *testing.T) {
	s := memory.NewStore() // fixture: 1 pendiente
	uc := buildInvoiceUC(s)

	inv, err := uc.Execute(dto.CreateInvoiceRequest{ClientName: "Nuevo Cliente"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePending, inv.Status, "status por defecto")

	invoices, err := memory.NewInvoiceRepository(s).List()
	require.NoError(t, err)
	assert.Equal(t, inv.ID, invoices[0].ID, "la más reciente va primero")

	m, err := memory.NewMetricsRepository(s).Get()
	require.NoError(t, err)
	assert.Equal(t, 2, m.PendingInvoices)
}

// Una factura pagada suma al revenue y registra paidAt.
func TestCreateInvoice_PagadaSumaRevenue(t *testing.T) {
	s := memory.NewStore() // fixture: revenue 720000
	uc := buildInvoiceUC(s)

	inv, err := uc.Execute(dto.CreateInvoiceRequest{
		ClientName: "Hogar y Jardín SAS",
		Status:     entity.InvoicePaid,
		Lines: []dto.InvoiceLineRequest{
			{Description: "Pintura", Quantity: dec("2"), UnitPrice: dec("72000"), Total: dec("144000")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, inv.PaidAt)

	m, err := memory.NewMetricsRepository(s).Get()
	require.NoError(t, err)
	assert.Equal(t, "864000", m.TotalRevenue.String())
}

// Status desconocido cae a pending; sin dueDate se asignan 30 días.
func TestCreateInvoice_Defaults(t *testing.T) {
	uc := buildInvoiceUC(memory.NewStore())

	inv, err := uc.Execute(dto.CreateInvoiceRequest{ClientName: "X", Status: "inventado"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePending, inv.Status)
	assert.Nil(t, inv.PaidAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), inv.DueDate, time.Minute)
}

// Sin líneas el total es cero: el backend no rechaza facturas vacías.
func TestCreateInvoice_SinLineas(t *testing.T) {
	uc := buildInvoiceUC(memory.NewStore())

	inv, err := uc.Execute(dto.CreateInvoiceRequest{ClientName: "Vacía"})
	require.NoError(t, err)
	assert.True(t, inv.Total.IsZero())
	assert.Empty(t, inv.Lines)
}
