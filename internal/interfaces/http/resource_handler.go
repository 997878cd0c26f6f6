package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

// ResourceHandler sirve las lecturas genéricas de colecciones y el
// comodín final: toda ruta desconocida responde 200 con objeto vacío,
// igual que haría un backend tolerante con un frontend adelantado.
type ResourceHandler struct {
	store *memory.Store
	log   *logger.Logger
}

// NewResourceHandler construye el handler.
func NewResourceHandler(store *memory.Store, log *logger.Logger) *ResourceHandler {
	return &ResourceHandler{store: store, log: log}
}

// Collection devuelve la colección asociada a la ruta solicitada.
// El snapshot es una copia: el llamador no puede mutar el estado.
func (h *ResourceHandler) Collection(c *fiber.Ctx) error {
	if data, ok := h.store.Snapshot(c.Path()); ok {
		return c.JSON(data)
	}
	return h.NotFound(c)
}

// Ack confirma acciones de activación genéricas. Las rutas que terminan en
// /enable y no tienen handler propio responden éxito sin efecto alguno.
func (h *ResourceHandler) Ack(c *fiber.Ctx) error {
	h.log.Info().
		Str("path", c.Path()).
		Msg("activación genérica confirmada sin efecto")
	return c.JSON(dto.AckResponse{Success: true})
}

// NotFound responde 200 con objeto vacío y deja rastro en el log.
func (h *ResourceHandler) NotFound(c *fiber.Ctx) error {
	h.log.Warn().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("ruta no encontrada, respondiendo objeto vacío")
	return c.JSON(fiber.Map{})
}
