package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/careconnect/crm-api/internal/application/dto"
	"github.com/careconnect/crm-api/internal/domain"
	"github.com/careconnect/crm-api/internal/domain/entity"
	"github.com/careconnect/crm-api/internal/domain/repository"
	"github.com/careconnect/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y cuenta: registro, login,
// perfil, contraseña y configuración.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt, asigna configuración
// por defecto y devuelve token + usuario. ErrDuplicate si username o email ya existen.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Settings:     entity.DefaultSettings(),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := uc.token(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user, false)}, nil
}

// Login verifica username-o-email + password y genera el JWT.
// ErrUserNotFound si no existe; ErrUnauthorized si la contraseña no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByLogin(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.token(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user, false)}, nil
}

// Me devuelve el perfil del usuario autenticado con su configuración parseada.
func (uc *AuthUseCase) Me(userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{User: toUserResponse(user, true)}, nil
}

// GetSettings devuelve la configuración tipada del usuario.
func (uc *AuthUseCase) GetSettings(userID string) (*dto.SettingsResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.SettingsResponse{Settings: user.Settings}, nil
}

// UpdateSettings reemplaza la configuración del usuario.
func (uc *AuthUseCase) UpdateSettings(userID string, in dto.UpdateSettingsRequest) (int64, error) {
	if in.Settings == nil {
		return 0, domain.ErrInvalidInput
	}
	return uc.userRepo.UpdateSettings(userID, *in.Settings)
}

// UpdateProfile actualiza nombre, email y foto de perfil.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (int64, error) {
	return uc.userRepo.UpdateProfile(userID, in.Name, in.Email, in.ProfileImage)
}

// ChangePassword verifica la contraseña actual y persiste la nueva.
// ErrInvalidInput cuando la contraseña actual no coincide (400 para el caller:
// no se distingue de cualquier otra entrada inválida).
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = uc.userRepo.UpdatePassword(userID, string(hash))
	return err
}

func (uc *AuthUseCase) token(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func toUserResponse(u *entity.User, withSettings bool) dto.UserResponse {
	out := dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Name:         u.Name,
		ProfileImage: u.ProfileImage,
	}
	if withSettings {
		settings := u.Settings
		out.Settings = &settings
	}
	return out
}
