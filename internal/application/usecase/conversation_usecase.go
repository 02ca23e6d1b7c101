package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// ConversationUseCase casos de uso de conversaciones. Crear una conversación
// emite una notificación new_conversation nombrando al cliente.
type ConversationUseCase struct {
	clients       repository.ClientRepository
	conversations repository.ConversationRepository
	notifications repository.NotificationRepository
}

// NewConversationUseCase construye el caso de uso.
func NewConversationUseCase(
	clients repository.ClientRepository,
	conversations repository.ConversationRepository,
	notifications repository.NotificationRepository,
) *ConversationUseCase {
	return &ConversationUseCase{clients: clients, conversations: conversations, notifications: notifications}
}

// List devuelve las conversaciones de todos los clientes del usuario (vía JOIN).
func (uc *ConversationUseCase) List(userID string) ([]*dto.ConversationResponse, error) {
	list, err := uc.conversations.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toConversationResponse(c))
	}
	return out, nil
}

// Create registra una conversación y emite la notificación new_conversation.
// ErrForbidden si el cliente referenciado no pertenece al usuario.
func (uc *ConversationUseCase) Create(userID string, in dto.CreateConversationRequest) (string, error) {
	if in.ClientID == "" {
		return "", domain.ErrInvalidInput
	}
	client, err := uc.clients.GetByIDAndOwner(in.ClientID, userID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", domain.ErrForbidden
	}
	conv := &entity.Conversation{
		ID:                    in.ID,
		ClientID:              in.ClientID,
		Type:                  in.Type,
		Date:                  in.Date,
		Notes:                 in.Notes,
		RepurchaseOpportunity: in.RepurchaseOpportunity,
	}
	if conv.ID == "" {
		conv.ID = uuid.New().String()
	}
	if err := uc.conversations.Create(conv); err != nil {
		return "", err
	}

	notif := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      entity.NotificationNewConversation,
		Message:   fmt.Sprintf("Nueva conversación de %s con %s.", conv.Type, client.Name),
		Link:      "/clients/" + client.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.notifications.Create(notif); err != nil {
		return "", err
	}
	return conv.ID, nil
}

// Update modifica una conversación tras resolver la pertenencia vía JOIN.
func (uc *ConversationUseCase) Update(userID, id string, in dto.UpdateConversationRequest) (int64, error) {
	existing, err := uc.conversations.GetByIDAndOwner(id, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrForbidden
	}
	existing.Type = in.Type
	existing.Date = in.Date
	existing.Notes = in.Notes
	existing.RepurchaseOpportunity = in.RepurchaseOpportunity
	return uc.conversations.Update(existing)
}

// Delete elimina una conversación tras resolver la pertenencia vía JOIN.
func (uc *ConversationUseCase) Delete(userID, id string) (int64, error) {
	existing, err := uc.conversations.GetByIDAndOwner(id, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrForbidden
	}
	return uc.conversations.Delete(id)
}

func toConversationResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		ID:                    c.ID,
		ClientID:              c.ClientID,
		Type:                  c.Type,
		Date:                  c.Date,
		Notes:                 c.Notes,
		RepurchaseOpportunity: c.RepurchaseOpportunity,
	}
}
