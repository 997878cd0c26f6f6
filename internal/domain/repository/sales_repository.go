package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// ItemRepository define el puerto de acceso al inventario.
type ItemRepository interface {
	List() ([]entity.Item, error)
	// Create agrega el ítem al final de la colección.
	Create(item *entity.Item) error
}

// InvoiceRepository define el puerto de acceso a las facturas.
type InvoiceRepository interface {
	List() ([]entity.Invoice, error)
	// Count devuelve el tamaño actual de la colección (para numeración secuencial).
	Count() (int, error)
	// Create antepone la factura (más reciente primero).
	Create(invoice *entity.Invoice) error
}

// QuotationRepository define el puerto de acceso a las cotizaciones.
type QuotationRepository interface {
	List() ([]entity.Quotation, error)
	Create(q *entity.Quotation) error
}
