package analytics

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// DashboardUseCase expone el agregado BusinessMetrics para el dashboard.
type DashboardUseCase struct {
	metrics repository.MetricsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(metrics repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metrics: metrics}
}

// Summary devuelve las métricas actuales del negocio.
func (uc *DashboardUseCase) Summary() (*entity.BusinessMetrics, error) {
	return uc.metrics.Get()
}
