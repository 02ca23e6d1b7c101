package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente bajo su owner.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, status, type, stage, created_at, last_interaction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.UserID, client.Name, client.Status, client.Type, client.Stage,
		timeOrNil(client.CreatedAt), timeOrNil(client.LastInteraction),
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un cliente solo si pertenece al usuario.
func (r *ClientRepo) GetByIDAndOwner(id, userID string) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, status, type, stage, created_at, last_interaction
		FROM clients WHERE id = $1 AND user_id = $2`
	var c entity.Client
	var created, last *time.Time
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Status, &c.Type, &c.Stage, &created, &last,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.CreatedAt = timeOrZero(created)
	c.LastInteraction = timeOrZero(last)
	return &c, nil
}

// ListByOwner lista los clientes del usuario.
func (r *ClientRepo) ListByOwner(userID string) ([]*entity.Client, error) {
	query := `
		SELECT id, user_id, name, status, type, stage, created_at, last_interaction
		FROM clients WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		var created, last *time.Time
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Status, &c.Type, &c.Stage, &created, &last); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c.CreatedAt = timeOrZero(created)
		c.LastInteraction = timeOrZero(last)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente. El llamador ya verificó pertenencia.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, status = $3, type = $4, stage = $5, last_interaction = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Status, client.Type, client.Stage,
		timeOrNil(client.LastInteraction),
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina la fila del cliente.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// OwnedBy predicado de autorización: existe el cliente y pertenece al usuario.
func (r *ClientRepo) OwnedBy(id, userID string) (bool, error) {
	var found int
	err := r.q.QueryRow(context.Background(),
		`SELECT 1 FROM clients WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check client owner: %w", err)
	}
	return true, nil
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
