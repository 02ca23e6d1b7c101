package dto

import (
	"time"

	"github.com/careconnect/crm-api/internal/domain/metrics"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los agregados los calcula el paquete metrics sobre el snapshot del usuario.
type DashboardSummaryDTO struct {
	metrics.Summary
	GeneratedAt time.Time `json:"generatedAt"`
}
