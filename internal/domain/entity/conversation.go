package entity

// Tipos válidos para Conversation.
const (
	ConversationStrategic = "strategic"
	ConversationPresale   = "presale"
	ConversationPostsale  = "postsale"
)

// Conversation interacción registrada con un Client. Misma pertenencia
// transitiva que Contact.
type Conversation struct {
	ID                    string
	ClientID              string
	Type                  string // strategic, presale, postsale
	Date                  string // YYYY-MM-DD, tal como lo registra el front
	Notes                 string
	RepurchaseOpportunity bool
}
