package entity

import "time"

// Canales y direcciones de CommunicationMessage.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"

	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Message representa un mensaje de comunicación (WhatsApp o email), saliente o entrante.
// ContactID referencia a Contact.ID por string, sin integridad referencial.
type Message struct {
	ID         string    `json:"id"`
	Channel    string    `json:"channel"`   // whatsapp | email
	Direction  string    `json:"direction"` // outbound | inbound
	ContactID  string    `json:"contactId"`
	To         string    `json:"to,omitempty"`
	From       string    `json:"from,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Body       string    `json:"body"`
	Status     string    `json:"status"` // sent, delivered, received
	ProviderID string    `json:"providerId"`
	SentAt     time.Time `json:"sentAt"`
}

// EmailAccount representa una cuenta de correo conectada.
type EmailAccount struct {
	ID          string    `json:"id"`
	Address     string    `json:"address"`
	Provider    string    `json:"provider"` // gmail, outlook, imap
	Status      string    `json:"status"`   // connected, error
	ExternalID  string    `json:"externalId"`
	ConnectedAt time.Time `json:"connectedAt"`
}
