package entity

import "time"

// Tipos de notificación emitidos por las mutaciones del repositorio.
const (
	NotificationStatusChange    = "status_change"
	NotificationStageChange     = "stage_change"
	NotificationNewConversation = "new_conversation"
)

// Notification evento visible para un usuario. Solo se crea como efecto
// secundario de mutaciones; nunca se edita, solo se marca leída.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	IsRead    bool
	Link      string // deep link opcional, ej. /clients/<id>
	CreatedAt time.Time
}
