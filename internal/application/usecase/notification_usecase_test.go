package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/crm-api/internal/application/usecase"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
)

func newNotificationUC(store *memStore) *usecase.NotificationUseCase {
	return usecase.NewNotificationUseCase(store.notificationRepo())
}

func seedNotification(store *memStore, id, userID string, read bool, at time.Time) {
	store.notifications = append(store.notifications, &entity.Notification{
		ID:        id,
		UserID:    userID,
		Type:      entity.NotificationStatusChange,
		Message:   "mensaje " + id,
		IsRead:    read,
		CreatedAt: at,
	})
}

func TestNotificationUseCase_List_MasRecientesPrimero(t *testing.T) {
	store := newMemStore()
	base := time.Now()
	seedNotification(store, "n1", ownerA, false, base.Add(-2*time.Hour))
	seedNotification(store, "n2", ownerA, false, base.Add(-1*time.Hour))
	seedNotification(store, "n3", ownerB, false, base)

	list, err := newNotificationUC(store).List(ownerA)
	require.NoError(t, err)
	require.Len(t, list, 2, "solo las del usuario")
	assert.Equal(t, "n2", list[0].ID, "la más reciente va primero")
	assert.Equal(t, "n1", list[1].ID)
}

func TestNotificationUseCase_MarkRead_Propia(t *testing.T) {
	store := newMemStore()
	seedNotification(store, "n1", ownerA, false, time.Now())

	require.NoError(t, newNotificationUC(store).MarkRead(ownerA, "n1"))
	assert.True(t, store.notifications[0].IsRead)
}

// Id inexistente o de otro usuario: NotFound, sin mutación.
func TestNotificationUseCase_MarkRead_AjenaRetornaNotFound(t *testing.T) {
	store := newMemStore()
	seedNotification(store, "n1", ownerB, false, time.Now())

	err := newNotificationUC(store).MarkRead(ownerA, "n1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, store.notifications[0].IsRead, "la notificación ajena no debe mutar")
}

func TestNotificationUseCase_MarkAllRead_SoloLasDelUsuario(t *testing.T) {
	store := newMemStore()
	seedNotification(store, "n1", ownerA, false, time.Now())
	seedNotification(store, "n2", ownerA, true, time.Now())
	seedNotification(store, "n3", ownerB, false, time.Now())

	require.NoError(t, newNotificationUC(store).MarkAllRead(ownerA))
	assert.True(t, store.notifications[0].IsRead)
	assert.True(t, store.notifications[1].IsRead)
	assert.False(t, store.notifications[2].IsRead, "las de otro usuario quedan intactas")
}
