package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/journey"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes: listado scoped al owner, alta,
// guardado con reemplazo de contactos, borrado en cascada y journey.
type ClientUseCase struct {
	txRunner      TxRunner
	clients       repository.ClientRepository
	conversations repository.ConversationRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(txRunner TxRunner, clients repository.ClientRepository, conversations repository.ConversationRepository) *ClientUseCase {
	return &ClientUseCase{txRunner: txRunner, clients: clients, conversations: conversations}
}

// List devuelve solo los clientes del usuario autenticado.
func (uc *ClientUseCase) List(userID string) ([]*dto.ClientResponse, error) {
	list, err := uc.clients.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Create persiste un cliente bajo el id del usuario y devuelve el id asignado.
// Los contactos NO se crean aquí: el caller los registra vía POST /contacts.
func (uc *ClientUseCase) Create(userID string, in dto.CreateClientRequest) (string, error) {
	if in.Name == "" {
		return "", domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:              in.ID,
		UserID:          userID,
		Name:            in.Name,
		Status:          in.Status,
		Type:            in.Type,
		Stage:           journey.DefaultStage,
		CreatedAt:       now,
		LastInteraction: now,
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.Status == "" {
		client.Status = entity.ClientStatusUnknown
	}
	if client.Type == "" {
		client.Type = entity.ClientTypeOrdinary
	}
	if in.CreatedAt != nil {
		client.CreatedAt = *in.CreatedAt
	}
	if in.LastInteraction != nil {
		client.LastInteraction = *in.LastInteraction
	}
	if err := uc.clients.Create(client); err != nil {
		return "", err
	}
	return client.ID, nil
}

// Save actualiza un cliente y reemplaza por completo sus contactos, todo en
// una transacción. Si status o stage cambian emite la notificación
// correspondiente. ErrNotFound si el cliente no existe o es de otro usuario
// (indistinguible a propósito).
func (uc *ClientUseCase) Save(ctx context.Context, userID, clientID string, in dto.SaveClientRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		clients repository.ClientRepository,
		contacts repository.ContactRepository,
		_ repository.ConversationRepository,
		notifications repository.NotificationRepository,
	) error {
		old, err := clients.GetByIDAndOwner(clientID, userID)
		if err != nil {
			return err
		}
		if old == nil {
			return domain.ErrNotFound
		}

		updated := &entity.Client{
			ID:              clientID,
			UserID:          userID,
			Name:            in.Name,
			Status:          in.Status,
			Type:            in.Type,
			Stage:           in.Stage,
			CreatedAt:       old.CreatedAt,
			LastInteraction: time.Now(),
		}
		if err := clients.Update(updated); err != nil {
			return err
		}

		// Reemplazo total de contactos: se borran los existentes y se recrea
		// el conjunto enviado, sin diff.
		if err := contacts.DeleteByClient(clientID); err != nil {
			return err
		}
		for _, c := range in.Contacts {
			contact := &entity.Contact{
				ID:       c.ID,
				ClientID: clientID,
				Name:     c.Name,
				Email:    c.Email,
				Phone:    c.Phone,
			}
			if contact.ID == "" {
				contact.ID = uuid.New().String()
			}
			if err := contacts.Create(contact); err != nil {
				return err
			}
		}

		if old.Status != in.Status {
			if err := notifications.Create(statusChangeNotification(userID, clientID, in.Name, in.Status)); err != nil {
				return err
			}
		}
		if old.Stage != in.Stage {
			if err := notifications.Create(stageChangeNotification(userID, clientID, in.Name, in.Stage)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete elimina el cliente junto con sus conversaciones y contactos en una
// transacción, para que no queden filas huérfanas.
func (uc *ClientUseCase) Delete(ctx context.Context, userID, clientID string) error {
	return uc.txRunner.Run(ctx, func(
		clients repository.ClientRepository,
		contacts repository.ContactRepository,
		conversations repository.ConversationRepository,
		_ repository.NotificationRepository,
	) error {
		owned, err := clients.OwnedBy(clientID, userID)
		if err != nil {
			return err
		}
		if !owned {
			return domain.ErrNotFound
		}
		if err := conversations.DeleteByClient(clientID); err != nil {
			return err
		}
		if err := contacts.DeleteByClient(clientID); err != nil {
			return err
		}
		return clients.Delete(clientID)
	})
}

// Journey deriva etapa, progreso e insignias del cliente a partir de su
// historial de conversaciones.
func (uc *ClientUseCase) Journey(userID, clientID string) (*dto.ClientJourneyResponse, error) {
	client, err := uc.clients.GetByIDAndOwner(clientID, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	convs, err := uc.conversations.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return &dto.ClientJourneyResponse{
		ClientID: client.ID,
		Stage:    client.Stage,
		Position: journey.StagePosition(client.Stage),
		Stages:   journey.Stages,
		Progress: journey.Progress(len(convs)),
		Badges:   journey.Badges(convs),
	}, nil
}

func statusChangeNotification(userID, clientID, name, status string) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      entity.NotificationStatusChange,
		Message:   fmt.Sprintf("El estado de %s cambió a %s.", name, status),
		Link:      "/clients/" + clientID,
		CreatedAt: time.Now(),
	}
}

func stageChangeNotification(userID, clientID, name, stage string) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      entity.NotificationStageChange,
		Message:   fmt.Sprintf("La etapa de %s cambió a %s.", name, stage),
		Link:      "/clients/" + clientID,
		CreatedAt: time.Now(),
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	out := &dto.ClientResponse{
		ID:     c.ID,
		Name:   c.Name,
		Status: c.Status,
		Type:   c.Type,
		Stage:  c.Stage,
	}
	if !c.CreatedAt.IsZero() {
		created := c.CreatedAt
		out.CreatedAt = &created
	}
	if !c.LastInteraction.IsZero() {
		last := c.LastInteraction
		out.LastInteraction = &last
	}
	return out
}
