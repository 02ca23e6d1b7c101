package usecase

import (
	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// NotificationUseCase lectura y marcado del feed de notificaciones.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List devuelve las notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) List(userID string) ([]*dto.NotificationResponse, error) {
	list, err := uc.notifications.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, &dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			Link:      n.Link,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// MarkRead marca una notificación como leída. ErrNotFound si el id no existe
// o pertenece a otro usuario.
func (uc *NotificationUseCase) MarkRead(userID, id string) error {
	affected, err := uc.notifications.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead marca todas las notificaciones del usuario como leídas.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.notifications.MarkAllRead(userID)
}
