package entity

// Contact persona de contacto de un Client. La pertenencia al usuario se
// resuelve transitivamente vía el Client, nunca se almacena redundante.
type Contact struct {
	ID       string
	ClientID string
	Name     string
	Email    string
	Phone    string
}
