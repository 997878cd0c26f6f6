package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain"
)

// MarketingHandler maneja campañas y notificaciones.
type MarketingHandler struct {
	uc *usecase.MarketingUseCase
}

// NewMarketingHandler construye el handler.
func NewMarketingHandler(uc *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{uc: uc}
}

// CreateCampaign crea una campaña de marketing.
func (h *MarketingHandler) CreateCampaign(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cm, err := h.uc.CreateCampaign(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cm)
}

// MarkRead marca una notificación como leída. El objetivo "all" marca todas.
func (h *MarketingHandler) MarkRead(c *fiber.Ctx) error {
	target := c.Params("target")
	res, err := h.uc.MarkRead(target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
