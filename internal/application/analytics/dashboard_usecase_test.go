package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/crm-api/internal/application/analytics"
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// Fakes mínimos: el caso de uso solo llama ListByOwner en ambos repos.

type stubClientRepo struct {
	list []*entity.Client
}

func (s *stubClientRepo) Create(*entity.Client) error                          { return nil }
func (s *stubClientRepo) GetByIDAndOwner(string, string) (*entity.Client, error) { return nil, nil }
func (s *stubClientRepo) ListByOwner(string) ([]*entity.Client, error)         { return s.list, nil }
func (s *stubClientRepo) Update(*entity.Client) error                          { return nil }
func (s *stubClientRepo) Delete(string) error                                  { return nil }
func (s *stubClientRepo) OwnedBy(string, string) (bool, error)                 { return false, nil }

type stubConversationRepo struct {
	list []*entity.Conversation
}

func (s *stubConversationRepo) Create(*entity.Conversation) error { return nil }
func (s *stubConversationRepo) GetByIDAndOwner(string, string) (*entity.Conversation, error) {
	return nil, nil
}
func (s *stubConversationRepo) ListByOwner(string) ([]*entity.Conversation, error) {
	return s.list, nil
}
func (s *stubConversationRepo) ListByClient(string) ([]*entity.Conversation, error) {
	return nil, nil
}
func (s *stubConversationRepo) Update(*entity.Conversation) (int64, error) { return 0, nil }
func (s *stubConversationRepo) Delete(string) (int64, error)               { return 0, nil }
func (s *stubConversationRepo) DeleteByClient(string) error                { return nil }

func TestDashboard_GetSummary_AgregaSnapshotDelUsuario(t *testing.T) {
	clients := &stubClientRepo{list: []*entity.Client{
		{ID: "c1", Status: entity.ClientStatusActive, Type: entity.ClientTypePremium, CreatedAt: time.Now().Add(-48 * time.Hour)},
		{ID: "c2", Status: entity.ClientStatusDormant, Type: entity.ClientTypeOrdinary},
	}}
	convs := &stubConversationRepo{list: []*entity.Conversation{
		{ID: "cv1", ClientID: "c1", Type: entity.ConversationStrategic, RepurchaseOpportunity: true},
		{ID: "cv2", ClientID: "c1", Type: entity.ConversationPresale},
	}}

	uc := analytics.NewDashboardUseCase(clients, convs)
	out, err := uc.GetSummary("user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalClients)
	assert.Equal(t, 2, out.TotalConversations)
	assert.Equal(t, 1, out.ActiveClients)
	assert.Equal(t, 1, out.DormantClients)
	assert.Equal(t, 1, out.PremiumClients)
	assert.Equal(t, 1, out.StrategicConversations)
	assert.Equal(t, 1, out.RepurchaseOpportunities)
	assert.Equal(t, 1, out.AvgClientAgeDays, "2 días de un cliente repartidos entre 2 clientes")
	assert.False(t, out.GeneratedAt.IsZero())
}

func TestDashboard_GetSummary_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubClientRepo{}, &stubConversationRepo{})
	out, err := uc.GetSummary("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalClients)
	assert.Equal(t, 0, out.AvgClientAgeDays)
}
