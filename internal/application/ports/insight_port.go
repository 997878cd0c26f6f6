package ports

import "context"

// InsightService define el puerto de salida hacia el generador de texto de
// insights. Cualquier adaptador (Anthropic, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato.
type InsightService interface {
	// GenerateInsight recibe un resumen textual del negocio y devuelve un
	// insight corto. El contexto debe llevar timeout: la llamada es externa.
	GenerateInsight(ctx context.Context, businessSummary string) (string, error)
}
