package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Métricas Prometheus del servidor HTTP. Las rutas se etiquetan con el patrón
// registrado (c.Route().Path), no con la URL cruda, para acotar la cardinalidad.
type httpMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	m := &httpMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "minegocio_http_requests_total",
			Help: "Total de peticiones HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "minegocio_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP (incluye la latencia simulada).",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// MetricsMiddleware instrumenta cada petición con contador y histograma.
func MetricsMiddleware(reg prometheus.Registerer) fiber.Handler {
	m := newHTTPMetrics(reg)
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return err
	}
}
