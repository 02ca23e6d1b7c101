// Package analytics contiene el caso de uso del dashboard del CRM.
package analytics

import (
	"fmt"
	"time"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/metrics"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del dashboard para un usuario.
//
// Solo carga el snapshot (clientes + conversaciones del owner); toda la
// derivación la hace el paquete metrics, que es puro y se testea aparte.
type DashboardUseCase struct {
	clients       repository.ClientRepository
	conversations repository.ConversationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(clients repository.ClientRepository, conversations repository.ConversationRepository) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, conversations: conversations}
}

// GetSummary carga clientes y conversaciones del usuario en paralelo y
// delega los agregados en metrics.Summarize.
func (uc *DashboardUseCase) GetSummary(userID string) (*dto.DashboardSummaryDTO, error) {
	type clientsResult struct {
		list []*entity.Client
		err  error
	}
	type convsResult struct {
		list []*entity.Conversation
		err  error
	}

	clientsCh := make(chan clientsResult, 1)
	convsCh := make(chan convsResult, 1)

	go func() {
		list, err := uc.clients.ListByOwner(userID)
		clientsCh <- clientsResult{list, err}
	}()
	go func() {
		list, err := uc.conversations.ListByOwner(userID)
		convsCh <- convsResult{list, err}
	}()

	clients := <-clientsCh
	convs := <-convsCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clients.err)
	}
	if convs.err != nil {
		return nil, fmt.Errorf("dashboard: conversaciones: %w", convs.err)
	}

	now := time.Now()
	return &dto.DashboardSummaryDTO{
		Summary:     metrics.Summarize(clients.list, convs.list, now),
		GeneratedAt: now,
	}, nil
}
