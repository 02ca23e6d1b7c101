package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/application/usecase"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/journey"
)

func newContactUC(store *memStore) *usecase.ContactUseCase {
	return usecase.NewContactUseCase(store.clientRepo(), store.contactRepo())
}

func TestContactUseCase_List_SoloContactosDelUsuario(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerA, entity.ClientStatusActive, journey.DefaultStage)
	seedClient(store, "c2", ownerB, entity.ClientStatusActive, journey.DefaultStage)
	store.contacts["ct1"] = &entity.Contact{ID: "ct1", ClientID: "c1", Name: "Mío"}
	store.contacts["ct2"] = &entity.Contact{ID: "ct2", ClientID: "c2", Name: "Ajeno"}

	list, err := newContactUC(store).List(ownerA)
	require.NoError(t, err)
	require.Len(t, list, 1, "la pertenencia se resuelve vía el cliente dueño")
	assert.Equal(t, "ct1", list[0].ID)
}

func TestContactUseCase_Create_AsignaID(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerA, entity.ClientStatusActive, journey.DefaultStage)

	id, err := newContactUC(store).Create(ownerA, dto.CreateContactRequest{
		ClientID: "c1", Name: "Ana", Email: "ana@acme.co",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, "c1", store.contacts[id].ClientID)
}

// Crear un contacto sobre cliente ajeno: 403 sin revelar si el cliente existe.
func TestContactUseCase_Create_ClienteAjenoForbiddenSinMutacion(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerB, entity.ClientStatusActive, journey.DefaultStage)

	_, err := newContactUC(store).Create(ownerA, dto.CreateContactRequest{
		ClientID: "c1", Name: "Intruso",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, store.contacts, "no debe persistirse ningún contacto")
}

func TestContactUseCase_Create_ClienteInexistenteForbidden(t *testing.T) {
	store := newMemStore()
	_, err := newContactUC(store).Create(ownerA, dto.CreateContactRequest{
		ClientID: "no-existe", Name: "Nadie",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"inexistente y ajeno responden igual")
}

func TestContactUseCase_Update_AjenoForbiddenSinMutacion(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerB, entity.ClientStatusActive, journey.DefaultStage)
	store.contacts["ct1"] = &entity.Contact{ID: "ct1", ClientID: "c1", Name: "Original"}

	_, err := newContactUC(store).Update(ownerA, "ct1", dto.UpdateContactRequest{Name: "Pirateado"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Original", store.contacts["ct1"].Name, "el contacto ajeno no debe mutar")
}

func TestContactUseCase_Update_PropioActualiza(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerA, entity.ClientStatusActive, journey.DefaultStage)
	store.contacts["ct1"] = &entity.Contact{ID: "ct1", ClientID: "c1", Name: "Original"}

	affected, err := newContactUC(store).Update(ownerA, "ct1", dto.UpdateContactRequest{
		Name: "Renombrado", Phone: "+57 1 234 5678",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, "Renombrado", store.contacts["ct1"].Name)
}

func TestContactUseCase_Delete_AjenoForbiddenSinMutacion(t *testing.T) {
	store := newMemStore()
	seedClient(store, "c1", ownerB, entity.ClientStatusActive, journey.DefaultStage)
	store.contacts["ct1"] = &entity.Contact{ID: "ct1", ClientID: "c1", Name: "Original"}

	_, err := newContactUC(store).Delete(ownerA, "ct1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, store.contacts, 1, "nada debe borrarse")
}
