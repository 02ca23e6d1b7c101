package usecase_test

import (
	"context"

	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso.
// La pertenencia transitiva (contacto/conversación → cliente → usuario) se
// resuelve igual que en los adaptadores reales, solo que sobre mapas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	clients       map[string]*entity.Client
	contacts      map[string]*entity.Contact
	conversations map[string]*entity.Conversation
	notifications []*entity.Notification
}

func newMemStore() *memStore {
	return &memStore{
		clients:       make(map[string]*entity.Client),
		contacts:      make(map[string]*entity.Contact),
		conversations: make(map[string]*entity.Conversation),
	}
}

func (s *memStore) clientRepo() repository.ClientRepository             { return &fakeClients{s} }
func (s *memStore) contactRepo() repository.ContactRepository           { return &fakeContacts{s} }
func (s *memStore) conversationRepo() repository.ConversationRepository { return &fakeConversations{s} }
func (s *memStore) notificationRepo() repository.NotificationRepository { return &fakeNotifications{s} }

func (s *memStore) ownerOfClient(clientID string) string {
	if c, ok := s.clients[clientID]; ok {
		return c.UserID
	}
	return ""
}

// fakeTxRunner ejecuta fn directamente sobre el store, sin transacción real.
type fakeTxRunner struct {
	store *memStore
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	clients repository.ClientRepository,
	contacts repository.ContactRepository,
	conversations repository.ConversationRepository,
	notifications repository.NotificationRepository,
) error) error {
	return fn(t.store.clientRepo(), t.store.contactRepo(), t.store.conversationRepo(), t.store.notificationRepo())
}

// ── clientes ─────────────────────────────────────────────────────────────────

type fakeClients struct{ s *memStore }

func (f *fakeClients) Create(client *entity.Client) error {
	cp := *client
	f.s.clients[client.ID] = &cp
	return nil
}

func (f *fakeClients) GetByIDAndOwner(id, userID string) (*entity.Client, error) {
	c, ok := f.s.clients[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClients) ListByOwner(userID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.s.clients {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClients) Update(client *entity.Client) error {
	if existing, ok := f.s.clients[client.ID]; ok {
		cp := *client
		cp.UserID = existing.UserID
		f.s.clients[client.ID] = &cp
	}
	return nil
}

func (f *fakeClients) Delete(id string) error {
	delete(f.s.clients, id)
	return nil
}

func (f *fakeClients) OwnedBy(id, userID string) (bool, error) {
	c, ok := f.s.clients[id]
	return ok && c.UserID == userID, nil
}

// ── contactos ────────────────────────────────────────────────────────────────

type fakeContacts struct{ s *memStore }

func (f *fakeContacts) Create(contact *entity.Contact) error {
	cp := *contact
	f.s.contacts[contact.ID] = &cp
	return nil
}

func (f *fakeContacts) GetByIDAndOwner(id, userID string) (*entity.Contact, error) {
	ct, ok := f.s.contacts[id]
	if !ok || f.s.ownerOfClient(ct.ClientID) != userID {
		return nil, nil
	}
	cp := *ct
	return &cp, nil
}

func (f *fakeContacts) ListByOwner(userID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, ct := range f.s.contacts {
		if f.s.ownerOfClient(ct.ClientID) == userID {
			cp := *ct
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeContacts) ListByClient(clientID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, ct := range f.s.contacts {
		if ct.ClientID == clientID {
			cp := *ct
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeContacts) Update(contact *entity.Contact) (int64, error) {
	if _, ok := f.s.contacts[contact.ID]; !ok {
		return 0, nil
	}
	cp := *contact
	f.s.contacts[contact.ID] = &cp
	return 1, nil
}

func (f *fakeContacts) Delete(id string) (int64, error) {
	if _, ok := f.s.contacts[id]; !ok {
		return 0, nil
	}
	delete(f.s.contacts, id)
	return 1, nil
}

func (f *fakeContacts) DeleteByClient(clientID string) error {
	for id, ct := range f.s.contacts {
		if ct.ClientID == clientID {
			delete(f.s.contacts, id)
		}
	}
	return nil
}

// ── conversaciones ───────────────────────────────────────────────────────────

type fakeConversations struct{ s *memStore }

func (f *fakeConversations) Create(conversation *entity.Conversation) error {
	cp := *conversation
	f.s.conversations[conversation.ID] = &cp
	return nil
}

func (f *fakeConversations) GetByIDAndOwner(id, userID string) (*entity.Conversation, error) {
	cv, ok := f.s.conversations[id]
	if !ok || f.s.ownerOfClient(cv.ClientID) != userID {
		return nil, nil
	}
	cp := *cv
	return &cp, nil
}

func (f *fakeConversations) ListByOwner(userID string) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, cv := range f.s.conversations {
		if f.s.ownerOfClient(cv.ClientID) == userID {
			cp := *cv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeConversations) ListByClient(clientID string) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, cv := range f.s.conversations {
		if cv.ClientID == clientID {
			cp := *cv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeConversations) Update(conversation *entity.Conversation) (int64, error) {
	if _, ok := f.s.conversations[conversation.ID]; !ok {
		return 0, nil
	}
	cp := *conversation
	f.s.conversations[conversation.ID] = &cp
	return 1, nil
}

func (f *fakeConversations) Delete(id string) (int64, error) {
	if _, ok := f.s.conversations[id]; !ok {
		return 0, nil
	}
	delete(f.s.conversations, id)
	return 1, nil
}

func (f *fakeConversations) DeleteByClient(clientID string) error {
	for id, cv := range f.s.conversations {
		if cv.ClientID == clientID {
			delete(f.s.conversations, id)
		}
	}
	return nil
}

// ── notificaciones ───────────────────────────────────────────────────────────

type fakeNotifications struct{ s *memStore }

func (f *fakeNotifications) Create(notification *entity.Notification) error {
	cp := *notification
	f.s.notifications = append(f.s.notifications, &cp)
	return nil
}

func (f *fakeNotifications) ListByUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	// Más recientes primero: el store las guarda en orden de inserción.
	for i := len(f.s.notifications) - 1; i >= 0; i-- {
		if f.s.notifications[i].UserID == userID {
			cp := *f.s.notifications[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkRead(id, userID string) (int64, error) {
	for _, n := range f.s.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeNotifications) MarkAllRead(userID string) error {
	for _, n := range f.s.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}
