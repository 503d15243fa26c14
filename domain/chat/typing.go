package chat

import "time"

// TypingSignal is ephemeral: it exists only while a participant is typing
// and is considered cleared by every observer once ExpiresAt has passed.
type TypingSignal struct {
	ConversationID ConversationID
	Participant    ParticipantID
	ExpiresAt      time.Time
}

func (t TypingSignal) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
