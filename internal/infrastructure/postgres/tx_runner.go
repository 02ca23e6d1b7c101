package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careconnect/crm-api/internal/application/usecase"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner implementa usecase.TxRunner sobre pgx: abre la transacción,
// ata los repos a ella y hace commit solo si fn no devuelve error.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner transaccional.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción. Rollback ante cualquier error.
func (t *TxRunner) Run(ctx context.Context, fn func(
	clients repository.ClientRepository,
	contacts repository.ContactRepository,
	conversations repository.ConversationRepository,
	notifications repository.NotificationRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = fn(
		NewClientRepository(tx),
		NewContactRepository(tx),
		NewConversationRepository(tx),
		NewNotificationRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
