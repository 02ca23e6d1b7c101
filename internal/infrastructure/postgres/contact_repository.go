package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository. La pertenencia al usuario
// se resuelve siempre con JOIN sobre clients.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un contacto.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO contacts (id, client_id, name, email, phone) VALUES ($1, $2, $3, $4, $5)`,
		contact.ID, contact.ClientID, contact.Name, contact.Email, contact.Phone,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene un contacto solo si su cliente pertenece al usuario.
func (r *ContactRepo) GetByIDAndOwner(id, userID string) (*entity.Contact, error) {
	query := `
		SELECT ct.id, ct.client_id, ct.name, ct.email, ct.phone
		FROM contacts ct
		JOIN clients c ON c.id = ct.client_id
		WHERE ct.id = $1 AND c.user_id = $2`
	var ct entity.Contact
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&ct.ID, &ct.ClientID, &ct.Name, &ct.Email, &ct.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &ct, nil
}

// ListByOwner lista todos los contactos de los clientes del usuario.
func (r *ContactRepo) ListByOwner(userID string) ([]*entity.Contact, error) {
	query := `
		SELECT ct.id, ct.client_id, ct.name, ct.email, ct.phone
		FROM contacts ct
		JOIN clients c ON c.id = ct.client_id
		WHERE c.user_id = $1
		ORDER BY ct.name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	return scanContacts(rows)
}

// ListByClient lista los contactos de un cliente concreto.
func (r *ContactRepo) ListByClient(clientID string) ([]*entity.Contact, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, client_id, name, email, phone FROM contacts WHERE client_id = $1 ORDER BY name`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts by client: %w", err)
	}
	defer rows.Close()
	return scanContacts(rows)
}

func scanContacts(rows pgx.Rows) ([]*entity.Contact, error) {
	var list []*entity.Contact
	for rows.Next() {
		var ct entity.Contact
		if err := rows.Scan(&ct.ID, &ct.ClientID, &ct.Name, &ct.Email, &ct.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &ct)
	}
	return list, rows.Err()
}

// Update actualiza un contacto; devuelve las filas afectadas.
func (r *ContactRepo) Update(contact *entity.Contact) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE contacts SET name = $2, email = $3, phone = $4 WHERE id = $1`,
		contact.ID, contact.Name, contact.Email, contact.Phone,
	)
	if err != nil {
		return 0, fmt.Errorf("update contact: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un contacto; devuelve las filas afectadas.
func (r *ContactRepo) Delete(id string) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByClient elimina todos los contactos del cliente (reemplazo total y cascada).
func (r *ContactRepo) DeleteByClient(clientID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE client_id = $1`, clientID)
	if err != nil {
		return fmt.Errorf("delete contacts by client: %w", err)
	}
	return nil
}
