package repository

import (
	"github.com/careconnect/crm-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByLogin busca por username O email (el login acepta ambos).
	GetByLogin(login string) (*entity.User, error)
	// UpdateProfile / UpdatePassword / UpdateSettings devuelven filas afectadas.
	UpdateProfile(id, name, email, profileImage string) (int64, error)
	UpdatePassword(id, passwordHash string) (int64, error)
	UpdateSettings(id string, settings entity.Settings) (int64, error)
}
