package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/minegocio-api/internal/application/usecase"
	"github.com/minegocio/minegocio-api/internal/infrastructure/memory"
	"github.com/minegocio/minegocio-api/pkg/logger"
)

// stubInsightService implementación de prueba del puerto de insights.
type stubInsightService struct {
	text        string
	err         error
	lastSummary string
}

func (s *stubInsightService) GenerateInsight(_ context.Context, businessSummary string) (string, error) {
	s.lastSummary = businessSummary
	return s.text, s.err
}

// Con el servicio respondiendo, el insight sale con source "ai" y el resumen
// enviado incluye las métricas actuales.
func TestInsightGenerate_ConServicio(t *testing.T) {
	s := memory.NewStore()
	svc := &stubInsightService{text: "  Prioriza cobrar la factura vencida de José Ramírez.  "}
	uc := usecase.NewInsightUseCase(svc, memory.NewMetricsRepository(s), logger.Nop())

	ins := uc.Generate(context.Background())
	require.NotNil(t, ins)
	assert.Equal(t, "ai", ins.Source)
	assert.Equal(t, "Prioriza cobrar la factura vencida de José Ramírez.", ins.Body,
		"el texto llega recortado")

	assert.True(t, strings.Contains(svc.lastSummary, "720000"), "el resumen lleva el revenue actual")
	assert.True(t, strings.Contains(svc.lastSummary, "Facturas pendientes: 1"))
}

// Un error del servicio degrada al placeholder; nunca se propaga.
func TestInsightGenerate_ErrorDegrada(t *testing.T) {
	s := memory.NewStore()
	svc := &stubInsightService{err: errors.New("api caída")}
	uc := usecase.NewInsightUseCase(svc, memory.NewMetricsRepository(s), logger.Nop())

	ins := uc.Generate(context.Background())
	require.NotNil(t, ins)
	assert.Equal(t, "fallback", ins.Source)
	assert.NotEmpty(t, ins.Body)
}

// Texto vacío del servicio cuenta como fallo.
func TestInsightGenerate_TextoVacioDegrada(t *testing.T) {
	s := memory.NewStore()
	svc := &stubInsightService{text: "   "}
	uc := usecase.NewInsightUseCase(svc, memory.NewMetricsRepository(s), logger.Nop())

	ins := uc.Generate(context.Background())
	assert.Equal(t, "fallback", ins.Source)
}
