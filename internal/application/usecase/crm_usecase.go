package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// CRMUseCase creación de prospectos, cotizaciones, contactos y tickets.
type CRMUseCase struct {
	leads      repository.LeadRepository
	quotations repository.QuotationRepository
	contacts   repository.ContactRepository
	tickets    repository.TicketRepository
	ids        repository.IDGenerator
	recalc     *analytics.Recalculator
}

// NewCRMUseCase construye el caso de uso.
func NewCRMUseCase(
	leads repository.LeadRepository,
	quotations repository.QuotationRepository,
	contacts repository.ContactRepository,
	tickets repository.TicketRepository,
	ids repository.IDGenerator,
	recalc *analytics.Recalculator,
) *CRMUseCase {
	return &CRMUseCase{leads: leads, quotations: quotations, contacts: contacts, tickets: tickets, ids: ids, recalc: recalc}
}

// CreateLead crea un prospecto y recalcula las métricas (activeLeads).
func (uc *CRMUseCase) CreateLead(in dto.CreateLeadRequest) (*entity.Lead, error) {
	status := in.Status
	if status == "" {
		status = entity.LeadNew
	}
	l := &entity.Lead{
		ID:        uc.ids.NewID(repository.PrefixLead),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Source:    in.Source,
		Status:    status,
		Value:     in.Value,
		CreatedAt: time.Now(),
	}
	if err := uc.leads.Create(l); err != nil {
		return nil, err
	}
	if _, err := uc.recalc.Recalculate(); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateQuotation crea una cotización.
func (uc *CRMUseCase) CreateQuotation(in dto.CreateQuotationRequest) (*entity.Quotation, error) {
	now := time.Now()
	valid := now.AddDate(0, 1, 0)
	if in.ValidUntil != nil {
		valid = *in.ValidUntil
	}
	status := in.Status
	if status == "" {
		status = "draft"
	}
	q := &entity.Quotation{
		ID:         uc.ids.NewID(repository.PrefixQuotation),
		LeadID:     in.LeadID,
		ClientName: in.ClientName,
		Total:      in.Total,
		Status:     status,
		ValidUntil: valid,
		CreatedAt:  now,
	}
	if err := uc.quotations.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// CreateContact crea un contacto.
func (uc *CRMUseCase) CreateContact(in dto.CreateContactRequest) (*entity.Contact, error) {
	c := &entity.Contact{
		ID:        uc.ids.NewID(repository.PrefixContact),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Tags:      in.Tags,
		CreatedAt: time.Now(),
	}
	if err := uc.contacts.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateTicket crea un ticket de soporte en estado open.
func (uc *CRMUseCase) CreateTicket(in dto.CreateTicketRequest) (*entity.Ticket, error) {
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	t := &entity.Ticket{
		ID:          uc.ids.NewID(repository.PrefixTicket),
		Subject:     in.Subject,
		Description: in.Description,
		Priority:    priority,
		Status:      "open",
		ContactID:   in.ContactID,
		CreatedAt:   time.Now(),
	}
	if err := uc.tickets.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}
