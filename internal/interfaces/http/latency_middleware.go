package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SimulatedLatency devuelve un middleware que espera un retardo fijo antes de
// despachar CUALQUIER petición, incluida la catch-all. Modela el round-trip de
// red para que el frontend pueda probar sus estados de carga. Con d <= 0 no
// espera (tests).
func SimulatedLatency(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d > 0 {
			time.Sleep(d)
		}
		return c.Next()
	}
}
