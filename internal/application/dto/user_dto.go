package dto

import "github.com/careconnect/crm-api/internal/domain/entity"

// RegisterRequest entrada para registro: los cuatro campos son obligatorios.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=200"`
}

// LoginRequest entrada para login. Username acepta username o email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
// Settings solo se incluye en /auth/me; en register/login va vacío.
type UserResponse struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	ProfileImage string           `json:"profileImage,omitempty"`
	Settings     *entity.Settings `json:"settings,omitempty"`
}

// AuthResponse salida de register y login: token JWT + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse salida de GET /auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// SettingsResponse salida de GET /user/settings.
type SettingsResponse struct {
	Settings entity.Settings `json:"settings"`
}

// UpdateSettingsRequest entrada de PUT /user/settings.
type UpdateSettingsRequest struct {
	Settings *entity.Settings `json:"settings" validate:"required"`
}

// UpdateProfileRequest entrada de PUT /user/profile.
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// ChangePasswordRequest entrada de PUT /user/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
