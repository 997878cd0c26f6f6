package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo operaciones sobre el tenant completo. Es el único adaptador que
// toca más de una colección bajo el mismo lock.
type TenantRepo struct {
	store *Store
}

// NewTenantRepository construye el adaptador de tenant.
func NewTenantRepository(store *Store) *TenantRepo {
	return &TenantRepo{store: store}
}

// Reset reemplaza la organización y deja un único usuario admin; vacía todas
// las demás colecciones y pone las métricas en cero. Representa el alta de un
// tenant nuevo (signup).
func (r *TenantRepo) Reset(org *entity.Organization, admin *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.org = org.Clone()
	s.users = []entity.User{*admin}

	s.employees = []entity.Employee{}
	s.items = []entity.Item{}
	s.invoices = []entity.Invoice{}
	s.projects = []entity.Project{}
	s.tasks = []entity.Task{}
	s.expenses = []entity.Expense{}
	s.campaigns = []entity.Campaign{}
	s.notifications = []entity.Notification{}
	s.leads = []entity.Lead{}
	s.quotations = []entity.Quotation{}
	s.messages = []entity.Message{}
	s.tickets = []entity.Ticket{}
	s.contacts = []entity.Contact{}
	s.emailAccounts = []entity.EmailAccount{}
	s.metrics = entity.BusinessMetrics{RevenueTrend: []entity.RevenuePoint{}}

	return nil
}
