package dto

// CreateContactRequest entrada de POST /contacts.
type CreateContactRequest struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// UpdateContactRequest entrada de PUT /contacts/:id.
type UpdateContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
