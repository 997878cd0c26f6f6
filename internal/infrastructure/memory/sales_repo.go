package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository      = (*ItemRepo)(nil)
	_ repository.InvoiceRepository   = (*InvoiceRepo)(nil)
	_ repository.QuotationRepository = (*QuotationRepo)(nil)
)

// ItemRepo adaptador de inventario sobre el store en memoria.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador de inventario.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// List devuelve una copia de la colección de ítems.
func (r *ItemRepo) List() ([]entity.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.items), nil
}

// Create agrega el ítem al final de la colección.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items = append(r.store.items, *item)
	return nil
}

// InvoiceRepo adaptador de facturas sobre el store en memoria.
type InvoiceRepo struct {
	store *Store
}

// NewInvoiceRepository construye el adaptador de facturas.
func NewInvoiceRepository(store *Store) *InvoiceRepo {
	return &InvoiceRepo{store: store}
}

// List devuelve una copia de la colección de facturas.
func (r *InvoiceRepo) List() ([]entity.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.invoices), nil
}

// Count devuelve el tamaño actual de la colección.
func (r *InvoiceRepo) Count() (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.invoices), nil
}

// Create antepone la factura (más reciente primero).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.invoices = prepend(r.store.invoices, *invoice)
	return nil
}

// QuotationRepo adaptador de cotizaciones sobre el store en memoria.
type QuotationRepo struct {
	store *Store
}

// NewQuotationRepository construye el adaptador de cotizaciones.
func NewQuotationRepository(store *Store) *QuotationRepo {
	return &QuotationRepo{store: store}
}

// List devuelve una copia de la colección de cotizaciones.
func (r *QuotationRepo) List() ([]entity.Quotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.quotations), nil
}

// Create antepone la cotización.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.quotations = prepend(r.store.quotations, *q)
	return nil
}
