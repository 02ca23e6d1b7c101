// Package journey contiene la lógica pura del customer journey: posición de
// etapa, tramo de progreso e insignias. Sin efectos secundarios ni acceso a DB.
package journey

import "github.com/careconnect/crm-api/internal/domain/entity"

// Stages secuencia ordenada de las 4 etapas del customer journey.
// El índice en este slice ES la posición del cliente en el viaje.
var Stages = []string{"Desconocido", "Prospecto", "Cliente", "Facturado"}

// DefaultStage etapa asignada a un cliente recién creado.
const DefaultStage = "Desconocido"

// StagePosition devuelve la posición ordinal (0..3) de la etapa en el viaje.
// Una etapa fuera del conjunto devuelve -1: el front la pinta "antes del
// primer paso", nunca debe tratarse como error.
func StagePosition(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

// Identificadores de insignia.
const (
	BadgeFirstContact   = "first_contact"
	BadgeFrequentClient = "frequent_client"
	BadgeRepurchase     = "repurchase_opportunity"
	BadgeStrategist     = "strategist"
)

// umbral mínimo de conversaciones estratégicas para la insignia de estratega
const strategistThreshold = 3

// Badges deriva las insignias de un cliente a partir de sus conversaciones.
// Son independientes y acumulativas: un cliente puede tener las cuatro.
func Badges(conversations []*entity.Conversation) []string {
	var (
		badges     []string
		strategic  int
		repurchase bool
	)
	for _, c := range conversations {
		if c.Type == entity.ConversationStrategic {
			strategic++
		}
		if c.RepurchaseOpportunity {
			repurchase = true
		}
	}

	if len(conversations) >= 1 {
		badges = append(badges, BadgeFirstContact)
	}
	if len(conversations) >= 5 {
		badges = append(badges, BadgeFrequentClient)
	}
	if repurchase {
		badges = append(badges, BadgeRepurchase)
	}
	if strategic >= strategistThreshold {
		badges = append(badges, BadgeStrategist)
	}
	return badges
}

// ProgressTier tramo de progreso de la relación con el cliente.
type ProgressTier struct {
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// Progress mapea el número de conversaciones a uno de cuatro tramos.
// Función escalón: los umbrales son cotas inferiores inclusivas y gana el
// tramo más alto que aplique.
func Progress(conversationCount int) ProgressTier {
	switch {
	case conversationCount >= 8:
		return ProgressTier{Percent: 100, Label: "Fidelización"}
	case conversationCount >= 4:
		return ProgressTier{Percent: 60, Label: "Desarrollo"}
	case conversationCount >= 1:
		return ProgressTier{Percent: 30, Label: "Inicio"}
	default:
		return ProgressTier{Percent: 0, Label: "Sin interacciones"}
	}
}
