package dto

// CreateConversationRequest entrada de POST /conversations.
type CreateConversationRequest struct {
	ID                    string `json:"id"`
	ClientID              string `json:"clientId" validate:"required"`
	Type                  string `json:"type" validate:"omitempty,oneof=strategic presale postsale"`
	Date                  string `json:"date"` // YYYY-MM-DD
	Notes                 string `json:"notes"`
	RepurchaseOpportunity bool   `json:"repurchaseOpportunity"`
}

// UpdateConversationRequest entrada de PUT /conversations/:id.
type UpdateConversationRequest struct {
	Type                  string `json:"type" validate:"omitempty,oneof=strategic presale postsale"`
	Date                  string `json:"date"`
	Notes                 string `json:"notes"`
	RepurchaseOpportunity bool   `json:"repurchaseOpportunity"`
}

// ConversationResponse salida de una conversación.
type ConversationResponse struct {
	ID                    string `json:"id"`
	ClientID              string `json:"clientId"`
	Type                  string `json:"type"`
	Date                  string `json:"date"`
	Notes                 string `json:"notes"`
	RepurchaseOpportunity bool   `json:"repurchaseOpportunity"`
}
