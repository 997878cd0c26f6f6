package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var (
	_ repository.MessageRepository      = (*MessageRepo)(nil)
	_ repository.EmailAccountRepository = (*EmailAccountRepo)(nil)
)

// MessageRepo adaptador de mensajes sobre el store en memoria.
type MessageRepo struct {
	store *Store
}

// NewMessageRepository construye el adaptador de mensajes.
func NewMessageRepository(store *Store) *MessageRepo {
	return &MessageRepo{store: store}
}

// List devuelve una copia de la colección de mensajes.
func (r *MessageRepo) List() ([]entity.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.messages), nil
}

// Create antepone el mensaje (más reciente primero).
func (r *MessageRepo) Create(m *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages = prepend(r.store.messages, *m)
	return nil
}

// EmailAccountRepo adaptador de cuentas de correo sobre el store en memoria.
type EmailAccountRepo struct {
	store *Store
}

// NewEmailAccountRepository construye el adaptador de cuentas de correo.
func NewEmailAccountRepository(store *Store) *EmailAccountRepo {
	return &EmailAccountRepo{store: store}
}

// List devuelve una copia de la colección de cuentas.
func (r *EmailAccountRepo) List() ([]entity.EmailAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return copySlice(r.store.emailAccounts), nil
}

// Create agrega la cuenta al final de la colección.
func (r *EmailAccountRepo) Create(a *entity.EmailAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.emailAccounts = append(r.store.emailAccounts, *a)
	return nil
}
