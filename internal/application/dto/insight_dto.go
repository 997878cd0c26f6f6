package dto

import "time"

// InsightDTO un insight de negocio generado (o el placeholder de degradación).
type InsightDTO struct {
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Source      string    `json:"source"` // ai | fallback
	GeneratedAt time.Time `json:"generatedAt"`
}
