package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/usecase"
)

// OrgHandler maneja la organización y el asistente de configuración inicial.
type OrgHandler struct {
	uc      *usecase.OrgUseCase
	modules *usecase.ModuleService
}

// NewOrgHandler construye el handler.
func NewOrgHandler(uc *usecase.OrgUseCase, modules *usecase.ModuleService) *OrgHandler {
	return &OrgHandler{uc: uc, modules: modules}
}

// Get godoc
// @Summary      Organización actual
// @Tags         orgs
// @Produce      json
// @Param        id  path  string  true  "ID (se acepta pero no se usa: singleton)"
// @Success      200  {object}  entity.Organization
// @Router       /orgs/{id} [get]
func (h *OrgHandler) Get(c *fiber.Ctx) error {
	org, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(org)
}

// SetupReset vuelve el setup a pending sin tocar otras colecciones (demo del onboarding).
func (h *OrgHandler) SetupReset(c *fiber.Ctx) error {
	org, err := h.uc.SetupReset()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(org)
}

// SetupComplete godoc
// @Summary      Completar configuración inicial
// @Tags         orgs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupCompleteRequest  true  "name, currency, industry, taxId"
// @Success      200   {object}  entity.Organization
// @Router       /setup/complete [post]
func (h *OrgHandler) SetupComplete(c *fiber.Ctx) error {
	var in dto.SetupCompleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	org, err := h.uc.SetupComplete(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(org)
}

// EnableModule activa el módulo de la ruta y responde el ack genérico.
func (h *OrgHandler) EnableModule(c *fiber.Ctx) error {
	return h.setModule(c, true)
}

// DisableModule desactiva el módulo de la ruta y responde el ack genérico.
func (h *OrgHandler) DisableModule(c *fiber.Ctx) error {
	return h.setModule(c, false)
}

func (h *OrgHandler) setModule(c *fiber.Ctx, enabled bool) error {
	name := c.Params("name")
	if _, err := h.modules.SetEnabled(name, enabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AckResponse{Success: true, Message: name})
}
