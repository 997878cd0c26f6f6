package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// CampaignRepository define el puerto de acceso a campañas de marketing.
type CampaignRepository interface {
	List() ([]entity.Campaign, error)
	// Create antepone la campaña (más reciente primero).
	Create(c *entity.Campaign) error
}

// NotificationRepository define el puerto de acceso a notificaciones.
type NotificationRepository interface {
	List() ([]entity.Notification, error)
	// MarkRead marca una notificación; devuelve domain.ErrNotFound si no existe.
	MarkRead(id string) (*entity.Notification, error)
	// MarkAllRead marca todas; idempotente y seguro sobre colección vacía.
	MarkAllRead() (int, error)
}
