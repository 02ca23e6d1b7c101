package repository

import (
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// ConversationRepository define el puerto de persistencia para Conversation.
// Misma resolución transitiva de pertenencia que ContactRepository.
type ConversationRepository interface {
	Create(conversation *entity.Conversation) error
	GetByIDAndOwner(id, userID string) (*entity.Conversation, error)
	ListByOwner(userID string) ([]*entity.Conversation, error)
	ListByClient(clientID string) ([]*entity.Conversation, error)
	Update(conversation *entity.Conversation) (int64, error)
	Delete(id string) (int64, error)
	DeleteByClient(clientID string) error
}
