package repository

import (
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
// Feed append-only: sin borrado ni expiración.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	// ListByUser devuelve las notificaciones del usuario, más recientes primero.
	ListByUser(userID string) ([]*entity.Notification, error)
	// MarkRead devuelve 0 filas afectadas si el id no existe o no es del usuario.
	MarkRead(id, userID string) (int64, error)
	MarkAllRead(userID string) error
}
