package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// MessageRepository define el puerto de acceso a los mensajes de comunicación.
type MessageRepository interface {
	List() ([]entity.Message, error)
	// Create antepone el mensaje (más reciente primero).
	Create(m *entity.Message) error
}

// EmailAccountRepository define el puerto de acceso a cuentas de correo conectadas.
type EmailAccountRepository interface {
	List() ([]entity.EmailAccount, error)
	Create(a *entity.EmailAccount) error
}
