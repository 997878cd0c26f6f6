package memory

import (
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo adaptador del agregado BusinessMetrics sobre el store en memoria.
type MetricsRepo struct {
	store *Store
}

// NewMetricsRepository construye el adaptador de métricas.
func NewMetricsRepository(store *Store) *MetricsRepo {
	return &MetricsRepo{store: store}
}

// Get devuelve una copia del agregado actual.
func (r *MetricsRepo) Get() (*entity.BusinessMetrics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m := r.store.metrics
	m.RevenueTrend = copySlice(r.store.metrics.RevenueTrend)
	return &m, nil
}

// Save reemplaza el agregado.
func (r *MetricsRepo) Save(m *entity.BusinessMetrics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *m
	cp.RevenueTrend = copySlice(m.RevenueTrend)
	r.store.metrics = cp
	return nil
}
