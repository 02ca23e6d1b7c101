package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. ErrDuplicate si username o email ya existen.
func (r *UserRepo) Create(user *entity.User) error {
	settings, err := json.Marshal(user.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	query := `
		INSERT INTO users (id, username, email, password_hash, name, profile_image, settings, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Name, user.ProfileImage,
		settings, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, name, profile_image, settings, created_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByLogin busca por username O email (el formulario de login acepta ambos).
func (r *UserRepo) GetByLogin(login string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password_hash, name, profile_image, settings, created_at
		FROM users WHERE username = $1 OR email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, login))
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var rawSettings []byte
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.ProfileImage,
		&rawSettings, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Settings = parseSettings(u.ID, rawSettings)
	return &u, nil
}

// parseSettings deserializa el registro tipado de configuración. Una fila
// malformada cae a los valores por defecto con un warning, nunca rompe la carga.
func parseSettings(userID string, raw []byte) entity.Settings {
	if len(raw) == 0 {
		return entity.DefaultSettings()
	}
	var s entity.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("settings malformados, usando valores por defecto")
		return entity.DefaultSettings()
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	return s
}

// UpdateProfile actualiza nombre, email y foto de perfil.
func (r *UserRepo) UpdateProfile(id, name, email, profileImage string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET name = $2, email = $3, profile_image = $4 WHERE id = $1`,
		id, name, email, profileImage,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update profile: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(id, passwordHash string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2 WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return 0, fmt.Errorf("update password: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateSettings persiste el registro tipado de configuración como JSONB.
func (r *UserRepo) UpdateSettings(id string, settings entity.Settings) (int64, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return 0, fmt.Errorf("marshal settings: %w", err)
	}
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET settings = $2 WHERE id = $1`,
		id, raw,
	)
	if err != nil {
		return 0, fmt.Errorf("update settings: %w", err)
	}
	return tag.RowsAffected(), nil
}
