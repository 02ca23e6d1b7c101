package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements DDL idempotente de las cinco tablas del CRM.
// El userId de contacts y conversations NO se almacena: la pertenencia se
// resuelve siempre vía JOIN con clients.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		profile_image TEXT NOT NULL DEFAULT '',
		settings      JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id),
		name             TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'unknown',
		type             TEXT NOT NULL DEFAULT 'ordinary',
		stage            TEXT NOT NULL DEFAULT 'Desconocido',
		created_at       TIMESTAMPTZ,
		last_interaction TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_user ON clients(user_id)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id        TEXT PRIMARY KEY,
		client_id TEXT NOT NULL REFERENCES clients(id),
		name      TEXT NOT NULL,
		email     TEXT NOT NULL DEFAULT '',
		phone     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_client ON contacts(client_id)`,
	`CREATE TABLE IF NOT EXISTS conversations (
		id                     TEXT PRIMARY KEY,
		client_id              TEXT NOT NULL REFERENCES clients(id),
		type                   TEXT NOT NULL,
		date                   TEXT NOT NULL DEFAULT '',
		notes                  TEXT NOT NULL DEFAULT '',
		repurchase_opportunity BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_client ON conversations(client_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id),
		type       TEXT NOT NULL,
		message    TEXT NOT NULL,
		is_read    BOOLEAN NOT NULL DEFAULT FALSE,
		link       TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at DESC)`,
}

// EnsureSchema crea las tablas e índices si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
