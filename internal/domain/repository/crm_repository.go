package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// LeadRepository define el puerto de acceso a prospectos.
type LeadRepository interface {
	List() ([]entity.Lead, error)
	Create(l *entity.Lead) error
}

// ContactRepository define el puerto de acceso a contactos.
type ContactRepository interface {
	List() ([]entity.Contact, error)
	Create(c *entity.Contact) error
}

// TicketRepository define el puerto de acceso a tickets de soporte.
type TicketRepository interface {
	List() ([]entity.Ticket, error)
	Create(t *entity.Ticket) error
}
