package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/billing"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/domain"
)

// SalesHandler maneja inventario, facturas y suscripción/add-ons.
type SalesHandler struct {
	items        *usecase.ItemUseCase
	invoices     *billing.CreateInvoiceUseCase
	subscription *billing.SubscriptionUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(items *usecase.ItemUseCase, invoices *billing.CreateInvoiceUseCase, subscription *billing.SubscriptionUseCase) *SalesHandler {
	return &SalesHandler{items: items, invoices: invoices, subscription: subscription}
}

// CreateItem godoc
// @Summary      Crear ítem de inventario
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem (numéricos aceptan string)"
// @Success      201   {object}  entity.Item
// @Router       /items [post]
func (h *SalesHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.items.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// CreateInvoice godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  entity.Invoice
// @Router       /invoices [post]
func (h *SalesHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.invoices.Execute(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// UpgradeSubscription godoc
// @Summary      Cambiar de plan (mutación autoritativa)
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpgradeRequest  true  "planId, paymentMethod"
// @Success      200   {object}  dto.BillingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /subscription/upgrade [post]
func (h *SalesHandler) UpgradeSubscription(c *fiber.Ctx) error {
	var in dto.UpgradeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.subscription.Upgrade(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAN", Message: "el plan no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PurchaseAddon desbloquea un add-on (idempotente).
func (h *SalesHandler) PurchaseAddon(c *fiber.Ctx) error {
	var in dto.PurchaseAddonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.subscription.PurchaseAddon(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAddon) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_ADDON", Message: "el add-on no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
