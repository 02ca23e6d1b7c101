package repository

import (
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Toda lectura y mutación está scoped al owner.
type ClientRepository interface {
	Create(client *entity.Client) error
	// GetByIDAndOwner devuelve (nil, nil) si la fila no existe o pertenece a otro usuario.
	GetByIDAndOwner(id, userID string) (*entity.Client, error)
	ListByOwner(userID string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	// Delete borra la fila del cliente; el llamador verifica pertenencia antes.
	Delete(id string) error
	// OwnedBy es el predicado de autorización: ¿el cliente pertenece al usuario?
	OwnedBy(id, userID string) (bool, error)
}
