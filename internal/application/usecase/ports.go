package usecase

import (
	"context"

	"github.com/careconnect/crm-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Lo usan el guardado de cliente (reemplazo de contactos + notificaciones) y
// el borrado en cascada, para que no quede estado intermedio visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clients repository.ClientRepository,
		contacts repository.ContactRepository,
		conversations repository.ConversationRepository,
		notifications repository.NotificationRepository,
	) error) error
}
