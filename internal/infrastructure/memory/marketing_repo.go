package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var (
	_ repository.CampaignRepository     = (*CampaignRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
)

// CampaignRepo adaptador de campañas sobre el store en memoria.
type CampaignRepo struct {
	store *Store
}

// NewCampaignRepository construye el adaptador de campañas.
func NewCampaignRepository(store *Store) *CampaignRepo {
	return &CampaignRepo{store: store}
}

// List devuelve una copia de la colección de campañas.
func (r *CampaignRepo) List() ([]entity.Campaign, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.campaigns), nil
}

// Create antepone la campaña (más reciente primero).
func (r *CampaignRepo) Create(c *entity.Campaign) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.campaigns = prepend(r.store.campaigns, *c)
	return nil
}

// NotificationRepo adaptador de notificaciones sobre el store en memoria.
type NotificationRepo struct {
	store *Store
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// List devuelve una copia de la colección de notificaciones.
func (r *NotificationRepo) List() ([]entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.notifications), nil
}

// MarkRead marca la notificación indicada como leída (map-update de un registro).
func (r *NotificationRepo) MarkRead(id string) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			r.store.notifications[i].Read = true
			cp := r.store.notifications[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MarkAllRead marca todas como leídas. Idempotente; sin error con colección vacía.
func (r *NotificationRepo) MarkAllRead() (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.notifications {
		r.store.notifications[i].Read = true
	}
	return len(r.store.notifications), nil
}
