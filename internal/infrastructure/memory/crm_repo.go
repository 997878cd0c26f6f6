package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var (
	_ repository.LeadRepository    = (*LeadRepo)(nil)
	_ repository.ContactRepository = (*ContactRepo)(nil)
	_ repository.TicketRepository  = (*TicketRepo)(nil)
)

// LeadRepo adaptador de prospectos sobre el store en memoria.
type LeadRepo struct {
	store *Store
}

// NewLeadRepository construye el adaptador de prospectos.
func NewLeadRepository(store *Store) *LeadRepo {
	return &LeadRepo{store: store}
}

// List devuelve una copia de la colección de prospectos.
func (r *LeadRepo) List() ([]entity.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.leads), nil
}

// Create antepone el prospecto.
func (r *LeadRepo) Create(l *entity.Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.leads = prepend(r.store.leads, *l)
	return nil
}

// ContactRepo adaptador de contactos sobre el store en memoria.
type ContactRepo struct {
	store *Store
}

// NewContactRepository construye el adaptador de contactos.
func NewContactRepository(store *Store) *ContactRepo {
	return &ContactRepo{store: store}
}

// List devuelve una copia de la colección de contactos.
func (r *ContactRepo) List() ([]entity.Contact, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.contacts), nil
}

// Create antepone el contacto.
func (r *ContactRepo) Create(c *entity.Contact) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.contacts = prepend(r.store.contacts, *c)
	return nil
}

// TicketRepo adaptador de tickets sobre el store en memoria.
type TicketRepo struct {
	store *Store
}

// NewTicketRepository construye el adaptador de tickets.
func NewTicketRepository(store *Store) *TicketRepo {
	return &TicketRepo{store: store}
}

// List devuelve una copia de la colección de tickets.
func (r *TicketRepo) List() ([]entity.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.tickets), nil
}

// Create antepone el ticket.
func (r *TicketRepo) Create(t *entity.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.tickets = prepend(r.store.tickets, *t)
	return nil
}
