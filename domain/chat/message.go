package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once appended. CreatedAt is assigned by the store.
type Message struct {
	ID             uuid.UUID
	ConversationID ConversationID
	Sender         ParticipantID
	Content        string
	CreatedAt      time.Time
}

// Before orders messages by creation time, id as tiebreak.
func (m Message) Before(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.ID.String() < other.ID.String()
}
