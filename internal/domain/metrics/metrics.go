// Package metrics deriva los agregados del dashboard a partir de los clientes
// y conversaciones de un usuario ya cargados en memoria. Funciones puras.
package metrics

import (
	"math"
	"time"

	"github.com/careconnect/crm-api/internal/domain/entity"
)

// Summary agregados del dashboard para un usuario.
type Summary struct {
	TotalClients       int `json:"totalClients"`
	TotalConversations int `json:"totalConversations"`

	StrategicConversations int `json:"strategicConversations"`
	PresaleConversations   int `json:"presaleConversations"`
	PostsaleConversations  int `json:"postsaleConversations"`

	ActiveClients  int `json:"activeClients"`
	DormantClients int `json:"dormantClients"`
	UnknownClients int `json:"unknownClients"`

	OrdinaryClients int `json:"ordinaryClients"`
	PremiumClients  int `json:"premiumClients"`

	RepurchaseOpportunities int `json:"repurchaseOpportunities"`

	// Edad promedio de los clientes en días (now - createdAt). Los clientes
	// sin createdAt aportan cero, lo que sesga el promedio a la baja; es el
	// comportamiento documentado, no un bug.
	AvgClientAgeDays int `json:"avgClientAgeDays"`
}

// Summarize calcula los agregados del dashboard. now se inyecta para que la
// función sea determinista en tests.
func Summarize(clients []*entity.Client, conversations []*entity.Conversation, now time.Time) Summary {
	s := Summary{
		TotalClients:       len(clients),
		TotalConversations: len(conversations),
	}

	for _, c := range conversations {
		switch c.Type {
		case entity.ConversationStrategic:
			s.StrategicConversations++
		case entity.ConversationPresale:
			s.PresaleConversations++
		case entity.ConversationPostsale:
			s.PostsaleConversations++
		}
		if c.RepurchaseOpportunity {
			s.RepurchaseOpportunities++
		}
	}

	var totalAge time.Duration
	for _, c := range clients {
		switch c.Status {
		case entity.ClientStatusActive:
			s.ActiveClients++
		case entity.ClientStatusDormant:
			s.DormantClients++
		case entity.ClientStatusUnknown:
			s.UnknownClients++
		}
		switch c.Type {
		case entity.ClientTypeOrdinary:
			s.OrdinaryClients++
		case entity.ClientTypePremium:
			s.PremiumClients++
		}
		if !c.CreatedAt.IsZero() {
			totalAge += now.Sub(c.CreatedAt)
		}
	}

	if len(clients) > 0 {
		days := totalAge.Hours() / 24 / float64(len(clients))
		s.AvgClientAgeDays = int(math.Round(days))
	}

	return s
}
