package usecase

import (
	"github.com/google/uuid"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// ContactUseCase casos de uso de contactos. La pertenencia siempre se
// verifica contra el cliente dueño antes de mutar.
type ContactUseCase struct {
	clients  repository.ClientRepository
	contacts repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(clients repository.ClientRepository, contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{clients: clients, contacts: contacts}
}

// List devuelve los contactos de todos los clientes del usuario (vía JOIN).
func (uc *ContactUseCase) List(userID string) ([]*dto.ContactResponse, error) {
	list, err := uc.contacts.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Create registra un contacto. ErrForbidden si el cliente referenciado no
// pertenece al usuario (no se revela si existe).
func (uc *ContactUseCase) Create(userID string, in dto.CreateContactRequest) (string, error) {
	if in.Name == "" || in.ClientID == "" {
		return "", domain.ErrInvalidInput
	}
	owned, err := uc.clients.OwnedBy(in.ClientID, userID)
	if err != nil {
		return "", err
	}
	if !owned {
		return "", domain.ErrForbidden
	}
	contact := &entity.Contact{
		ID:       in.ID,
		ClientID: in.ClientID,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
	}
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if err := uc.contacts.Create(contact); err != nil {
		return "", err
	}
	return contact.ID, nil
}

// Update modifica un contacto tras resolver la pertenencia vía JOIN.
func (uc *ContactUseCase) Update(userID, id string, in dto.UpdateContactRequest) (int64, error) {
	existing, err := uc.contacts.GetByIDAndOwner(id, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrForbidden
	}
	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	return uc.contacts.Update(existing)
}

// Delete elimina un contacto tras resolver la pertenencia vía JOIN.
func (uc *ContactUseCase) Delete(userID, id string) (int64, error) {
	existing, err := uc.contacts.GetByIDAndOwner(id, userID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, domain.ErrForbidden
	}
	return uc.contacts.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:       c.ID,
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
