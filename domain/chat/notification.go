package chat

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const KindChatMessage NotificationKind = "chat_message"

type NotificationPayload struct {
	ConversationID ConversationID
	Sender         ParticipantID
	ContentPreview string
}

// Notification is a best-effort side record; losing one never affects
// message delivery.
type Notification struct {
	ID        uuid.UUID
	Recipient ParticipantID
	Kind      NotificationKind
	Payload   NotificationPayload
	Read      bool
	CreatedAt time.Time
}

// Preview truncates content to at most n runes.
func Preview(content string, n int) string {
	if n <= 0 {
		return content
	}
	r := []rune(content)
	if len(r) <= n {
		return content
	}
	return string(r[:n]) + "…"
}
