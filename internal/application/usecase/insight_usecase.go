package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/application/ports"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

// fallbackInsight insight estático devuelto cuando el servicio de IA falla,
// devuelve texto vacío o no hay API key configurada. Nunca se propaga el error.
const fallbackInsight = "El servicio de insights no está disponible en este momento. Revisa tus facturas pendientes y los ítems en stock bajo desde el dashboard."

// InsightUseCase genera un insight de negocio a partir de las métricas actuales.
// Cualquier fallo del colaborador externo degrada al insight estático.
type InsightUseCase struct {
	svc     ports.InsightService
	metrics repository.MetricsRepository
	log     *logger.Logger
}

// NewInsightUseCase construye el caso de uso.
func NewInsightUseCase(svc ports.InsightService, metrics repository.MetricsRepository, log *logger.Logger) *InsightUseCase {
	return &InsightUseCase{svc: svc, metrics: metrics, log: log}
}

// Generate arma el resumen del negocio, llama al servicio con timeout de 10 s
// y devuelve el insight generado o el placeholder. Nunca devuelve error al caller.
func (uc *InsightUseCase) Generate(ctx context.Context) *dto.InsightDTO {
	now := time.Now()

	m, err := uc.metrics.Get()
	if err != nil {
		uc.log.Warn().Err(err).Msg("insights: no se pudieron leer las métricas")
		return &dto.InsightDTO{Title: "Insight del negocio", Body: fallbackInsight, Source: "fallback", GeneratedAt: now}
	}

	summary := fmt.Sprintf(
		"Ingresos totales: %s. Leads activos: %d. Facturas pendientes: %d. Ítems en stock bajo: %d.",
		m.TotalRevenue.StringFixed(0), m.ActiveLeads, m.PendingInvoices, m.LowStockItems,
	)

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.svc.GenerateInsight(ctx, summary)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			uc.log.Warn().Err(err).Msg("insights: degradando a insight estático")
		}
		return &dto.InsightDTO{Title: "Insight del negocio", Body: fallbackInsight, Source: "fallback", GeneratedAt: now}
	}

	return &dto.InsightDTO{Title: "Insight del negocio", Body: strings.TrimSpace(text), Source: "ai", GeneratedAt: now}
}
