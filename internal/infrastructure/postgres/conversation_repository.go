package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

var _ repository.ConversationRepository = (*ConversationRepo)(nil)

// ConversationRepo implementación de ConversationRepository. Pertenencia
// transitiva vía JOIN con clients, igual que ContactRepo.
type ConversationRepo struct {
	q Querier
}

// NewConversationRepository construye el adaptador.
func NewConversationRepository(q Querier) *ConversationRepo {
	return &ConversationRepo{q: q}
}

// Create persiste una conversación.
func (r *ConversationRepo) Create(conversation *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, client_id, type, date, notes, repurchase_opportunity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		conversation.ID, conversation.ClientID, conversation.Type, conversation.Date,
		conversation.Notes, conversation.RepurchaseOpportunity,
	)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una conversación solo si su cliente pertenece al usuario.
func (r *ConversationRepo) GetByIDAndOwner(id, userID string) (*entity.Conversation, error) {
	query := `
		SELECT cv.id, cv.client_id, cv.type, cv.date, cv.notes, cv.repurchase_opportunity
		FROM conversations cv
		JOIN clients c ON c.id = cv.client_id
		WHERE cv.id = $1 AND c.user_id = $2`
	var cv entity.Conversation
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&cv.ID, &cv.ClientID, &cv.Type, &cv.Date, &cv.Notes, &cv.RepurchaseOpportunity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &cv, nil
}

// ListByOwner lista todas las conversaciones de los clientes del usuario.
func (r *ConversationRepo) ListByOwner(userID string) ([]*entity.Conversation, error) {
	query := `
		SELECT cv.id, cv.client_id, cv.type, cv.date, cv.notes, cv.repurchase_opportunity
		FROM conversations cv
		JOIN clients c ON c.id = cv.client_id
		WHERE c.user_id = $1
		ORDER BY cv.date DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()
	return scanConversations(rows)
}

// ListByClient lista las conversaciones de un cliente concreto.
func (r *ConversationRepo) ListByClient(clientID string) ([]*entity.Conversation, error) {
	query := `
		SELECT id, client_id, type, date, notes, repurchase_opportunity
		FROM conversations WHERE client_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list conversations by client: %w", err)
	}
	defer rows.Close()
	return scanConversations(rows)
}

func scanConversations(rows pgx.Rows) ([]*entity.Conversation, error) {
	var list []*entity.Conversation
	for rows.Next() {
		var cv entity.Conversation
		if err := rows.Scan(&cv.ID, &cv.ClientID, &cv.Type, &cv.Date, &cv.Notes, &cv.RepurchaseOpportunity); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		list = append(list, &cv)
	}
	return list, rows.Err()
}

// Update actualiza una conversación; devuelve las filas afectadas.
func (r *ConversationRepo) Update(conversation *entity.Conversation) (int64, error) {
	query := `
		UPDATE conversations SET type = $2, date = $3, notes = $4, repurchase_opportunity = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		conversation.ID, conversation.Type, conversation.Date, conversation.Notes,
		conversation.RepurchaseOpportunity,
	)
	if err != nil {
		return 0, fmt.Errorf("update conversation: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina una conversación; devuelve las filas afectadas.
func (r *ConversationRepo) Delete(id string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete conversation: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByClient elimina todas las conversaciones del cliente (cascada).
func (r *ConversationRepo) DeleteByClient(clientID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM conversations WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete conversations by client: %w", err)
	}
	return nil
}
