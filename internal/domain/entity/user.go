package entity

import "time"

// User representa un usuario interno del CRM (vendedor, gerente).
// Todos los clientes, contactos y conversaciones están scoped a su ID.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	ProfileImage string
	Settings     Settings
	CreatedAt    time.Time
}

// NotificationSettings preferencias de notificación del usuario.
type NotificationSettings struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Reminders bool `json:"reminders"`
}

// PrivacySettings preferencias de privacidad del usuario.
type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"` // public, private
	DataSharing       bool   `json:"dataSharing"`
}

// Settings configuración tipada del usuario. Antes era un blob JSON opaco;
// el registro tipado detecta valores malformados al cargar.
type Settings struct {
	Theme         string               `json:"theme"`
	CustomTheme   map[string]string    `json:"customTheme,omitempty"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
}

// DefaultSettings valores iniciales al registrar un usuario.
func DefaultSettings() Settings {
	return Settings{
		Theme: "default",
		Notifications: NotificationSettings{
			Email:     true,
			Push:      true,
			Reminders: true,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: "public",
			DataSharing:       false,
		},
	}
}
