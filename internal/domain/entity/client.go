package entity

import "time"

// Estados válidos para Client.
const (
	ClientStatusActive  = "active"
	ClientStatusDormant = "dormant"
	ClientStatusUnknown = "unknown"
)

// Tipos válidos para Client.
const (
	ClientTypeOrdinary = "ordinary"
	ClientTypePremium  = "premium"
)

// Client representa un cliente del CRM. Pertenece a exactamente un User (owner);
// ninguna operación debe cruzar ese límite.
type Client struct {
	ID              string
	UserID          string
	Name            string
	Status          string    // active, dormant, unknown
	Type            string    // ordinary, premium
	Stage           string    // etapa del customer journey (ver paquete journey)
	CreatedAt       time.Time // zero value = desconocido (filas antiguas sin fecha)
	LastInteraction time.Time
}
