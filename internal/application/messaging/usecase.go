package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// MessagingUseCase mensajería simulada: envíos salientes por WhatsApp/email,
// webhook entrante de WhatsApp y conexión de cuentas de correo. No hay
// proveedor real detrás; el ProviderID se genera localmente.
type MessagingUseCase struct {
	messages repository.MessageRepository
	accounts repository.EmailAccountRepository
	ids      repository.IDGenerator
}

// NewMessagingUseCase construye el caso de uso.
func NewMessagingUseCase(messages repository.MessageRepository, accounts repository.EmailAccountRepository, ids repository.IDGenerator) *MessagingUseCase {
	return &MessagingUseCase{messages: messages, accounts: accounts, ids: ids}
}

// Send registra un mensaje saliente en el canal indicado (whatsapp o email).
func (uc *MessagingUseCase) Send(channel string, in dto.SendMessageRequest) (*entity.Message, error) {
	m := &entity.Message{
		ID:         uc.ids.NewID(repository.PrefixMessage),
		Channel:    channel,
		Direction:  entity.DirectionOutbound,
		ContactID:  in.ContactID,
		To:         in.To,
		Subject:    in.Subject,
		Body:       in.Body,
		Status:     "sent",
		ProviderID: uuid.New().String(),
		SentAt:     time.Now(),
	}
	if err := uc.messages.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ReceiveWhatsApp registra un mensaje entrante simulado (webhook).
func (uc *MessagingUseCase) ReceiveWhatsApp(in dto.WebhookMessageRequest) (*entity.Message, error) {
	m := &entity.Message{
		ID:         uc.ids.NewID(repository.PrefixMessage),
		Channel:    entity.ChannelWhatsApp,
		Direction:  entity.DirectionInbound,
		ContactID:  in.ContactID,
		From:       in.From,
		Body:       in.Body,
		Status:     "received",
		ProviderID: uuid.New().String(),
		SentAt:     time.Now(),
	}
	if err := uc.messages.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ConnectEmail registra una cuenta de correo como conectada.
func (uc *MessagingUseCase) ConnectEmail(in dto.ConnectEmailRequest) (*entity.EmailAccount, error) {
	provider := in.Provider
	if provider == "" {
		provider = "imap"
	}
	a := &entity.EmailAccount{
		ID:          uc.ids.NewID(repository.PrefixEmailAccount),
		Address:     in.Address,
		Provider:    provider,
		Status:      "connected",
		ExternalID:  uuid.New().String(),
		ConnectedAt: time.Now(),
	}
	if err := uc.accounts.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}
