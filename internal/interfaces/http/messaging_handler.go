package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/messaging"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
)

// MessagingHandler maneja el envío de mensajes por WhatsApp y correo,
// el webhook de entrada y la conexión de cuentas de correo.
type MessagingHandler struct {
	uc *messaging.MessagingUseCase
}

// NewMessagingHandler construye el handler.
func NewMessagingHandler(uc *messaging.MessagingUseCase) *MessagingHandler {
	return &MessagingHandler{uc: uc}
}

// SendWhatsApp registra un mensaje saliente por WhatsApp.
func (h *MessagingHandler) SendWhatsApp(c *fiber.Ctx) error {
	return h.send(c, entity.ChannelWhatsApp)
}

// SendEmail registra un correo saliente.
func (h *MessagingHandler) SendEmail(c *fiber.Ctx) error {
	return h.send(c, entity.ChannelEmail)
}

func (h *MessagingHandler) send(c *fiber.Ctx, channel string) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.Send(channel, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// ReceiveWhatsApp recibe un mensaje entrante desde el webhook del proveedor.
func (h *MessagingHandler) ReceiveWhatsApp(c *fiber.Ctx) error {
	var in dto.WebhookMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.ReceiveWhatsApp(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// ConnectEmail conecta una cuenta de correo al inbox unificado.
func (h *MessagingHandler) ConnectEmail(c *fiber.Ctx) error {
	var in dto.ConnectEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	acc, err := h.uc.ConnectEmail(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(acc)
}
