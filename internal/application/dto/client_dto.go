package dto

import (
	"time"

	"github.com/careconnect/crm-api/internal/domain/journey"
)

// ContactPayload contacto embebido en la creación/guardado de un cliente.
type ContactPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateClientRequest entrada de POST /clients. El id es opcional: si viene
// vacío el servidor asigna uno.
type CreateClientRequest struct {
	ID              string     `json:"id"`
	Name            string     `json:"name" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=active dormant unknown"`
	Type            string     `json:"type" validate:"omitempty,oneof=ordinary premium"`
	CreatedAt       *time.Time `json:"createdAt"`
	LastInteraction *time.Time `json:"lastInteraction"`
}

// SaveClientRequest entrada de PUT /clients/:id. Los contactos enviados
// reemplazan por completo los existentes (no se hace diff).
type SaveClientRequest struct {
	Name     string           `json:"name" validate:"required"`
	Status   string           `json:"status" validate:"omitempty,oneof=active dormant unknown"`
	Type     string           `json:"type" validate:"omitempty,oneof=ordinary premium"`
	Stage    string           `json:"stage"`
	Contacts []ContactPayload `json:"contacts"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Type            string     `json:"type"`
	Stage           string     `json:"stage"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	LastInteraction *time.Time `json:"lastInteraction,omitempty"`
}

// ClientJourneyResponse salida de GET /clients/:id/journey: posición en el
// viaje más progreso e insignias derivados de las conversaciones.
type ClientJourneyResponse struct {
	ClientID string               `json:"clientId"`
	Stage    string               `json:"stage"`
	Position int                  `json:"position"` // -1 si la etapa no está en la secuencia
	Stages   []string             `json:"stages"`
	Progress journey.ProgressTier `json:"progress"`
	Badges   []string             `json:"badges"`
}
