package dto

// SendMessageRequest entrada de POST /whatsapp/send y POST /email/send.
type SendMessageRequest struct {
	ContactID string `json:"contactId"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// WebhookMessageRequest entrada de POST /whatsapp/webhook (mensaje entrante simulado).
type WebhookMessageRequest struct {
	From      string `json:"from"`
	ContactID string `json:"contactId"`
	Body      string `json:"body"`
}

// ConnectEmailRequest entrada de POST /email/connect.
type ConnectEmailRequest struct {
	Address  string `json:"address"`
	Provider string `json:"provider"`
}
