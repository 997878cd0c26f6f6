package memory

import (
	"sync"

	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var _ repository.IDGenerator = (*Store)(nil)

// Store mantiene todas las colecciones mutables del tenant en memoria.
//
// Es el único dueño del estado compartido: lo construye
// el main, se inyecta en los repositorios y toda mutación pasa por su mutex.
// El estado es volátil: se siembra desde el fixture al arrancar y se pierde al
// terminar el proceso.
type Store struct {
	mu  sync.RWMutex
	ids idGenerator

	org           *entity.Organization
	users         []entity.User
	employees     []entity.Employee
	items         []entity.Item
	invoices      []entity.Invoice
	projects      []entity.Project
	tasks         []entity.Task
	expenses      []entity.Expense
	campaigns     []entity.Campaign
	notifications []entity.Notification
	leads         []entity.Lead
	quotations    []entity.Quotation
	messages      []entity.Message
	tickets       []entity.Ticket
	contacts      []entity.Contact
	emailAccounts []entity.EmailAccount
	metrics       entity.BusinessMetrics
}

// NewStore crea un store sembrado con una copia profunda del fixture,
// de modo que cada arranque de proceso parte del mismo estado.
func NewStore() *Store {
	s := &Store{}
	seed(s)
	return s
}

// NewEmptyStore crea un store sin fixture (tests).
func NewEmptyStore() *Store {
	return &Store{
		org:     &entity.Organization{},
		metrics: entity.BusinessMetrics{RevenueTrend: []entity.RevenuePoint{}},
	}
}

// NewID genera un ID opaco {prefijo}-{timestamp} único dentro del proceso.
func (s *Store) NewID(prefix string) string {
	return s.ids.next(prefix)
}

// Snapshot resuelve una ruta de recurso a una copia de su colección actual.
// Refleja siempre la última mutación (read-your-writes): la copia se toma
// bajo el mismo lock que protege las escrituras.
func (s *Store) Snapshot(path string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch path {
	case "/users":
		return copySlice(s.users), true
	case "/employees":
		return copySlice(s.employees), true
	case "/items":
		return copySlice(s.items), true
	case "/invoices":
		return copySlice(s.invoices), true
	case "/projects":
		return copySlice(s.projects), true
	case "/tasks":
		return copySlice(s.tasks), true
	case "/expenses":
		return copySlice(s.expenses), true
	case "/marketing/campaigns":
		return copySlice(s.campaigns), true
	case "/notifications":
		return copySlice(s.notifications), true
	case "/leads":
		return copySlice(s.leads), true
	case "/quotations":
		return copySlice(s.quotations), true
	case "/messages":
		return copySlice(s.messages), true
	case "/tickets":
		return copySlice(s.tickets), true
	case "/contacts":
		return copySlice(s.contacts), true
	case "/email/accounts":
		return copySlice(s.emailAccounts), true
	default:
		return nil, false
	}
}

// copySlice copia la colección para que el caller pueda serializarla fuera del lock.
func copySlice[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// prepend antepone un elemento (más reciente primero).
func prepend[T any](list []T, v T) []T {
	return append([]T{v}, list...)
}
