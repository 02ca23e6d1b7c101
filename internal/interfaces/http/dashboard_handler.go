package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/careconnect/crm-api/internal/application/analytics"
	"github.com/careconnect/crm-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los agregados del CRM para el usuario autenticado.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (totalClients, totalConversations, desgloses
// por estado/tipo, repurchaseOpportunities, avgClientAgeDays, generatedAt).
// No requiere parámetros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token",
		})
	}

	summary, err := h.uc.GetSummary(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(summary)
}
