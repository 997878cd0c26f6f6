package repository

import "github.com/minegocio/minegocio-api/internal/domain/entity"

// MetricsRepository define el puerto de acceso al agregado BusinessMetrics.
type MetricsRepository interface {
	Get() (*entity.BusinessMetrics, error)
	Save(m *entity.BusinessMetrics) error
}
