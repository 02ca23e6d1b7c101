package repository

import (
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para Contact.
// La pertenencia se resuelve con JOIN sobre clients (nunca se almacena el userId).
type ContactRepository interface {
	Create(contact *entity.Contact) error
	// GetByIDAndOwner resuelve pertenencia vía JOIN; (nil, nil) si no existe o no es del usuario.
	GetByIDAndOwner(id, userID string) (*entity.Contact, error)
	ListByOwner(userID string) ([]*entity.Contact, error)
	ListByClient(clientID string) ([]*entity.Contact, error)
	Update(contact *entity.Contact) (int64, error)
	Delete(id string) (int64, error)
	// DeleteByClient elimina todos los contactos del cliente (reemplazo total y cascada).
	DeleteByClient(clientID string) error
}
