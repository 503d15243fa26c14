package event

import (
	"teammate-chat/domain/chat"
	"time"
)

// Topic scopes a subscription. Conversation topics carry messages and typing
// changes; inbox topics carry per-recipient notification activity.
type Topic string

func ConversationTopic(id chat.ConversationID) Topic {
	return Topic("conversation:" + string(id))
}

func InboxTopic(p chat.ParticipantID) Topic {
	return Topic("inbox:" + string(p))
}

type DomainEvent interface {
	Topic() Topic
}

type MessageAppended struct {
	Message chat.Message
}

func (m MessageAppended) Topic() Topic {
	return ConversationTopic(m.Message.ConversationID)
}

// TypingChanged carries the expiry so observers can drop a stale signal on
// their own when no explicit clear arrives.
type TypingChanged struct {
	ConversationID chat.ConversationID
	Participant    chat.ParticipantID
	IsTyping       bool
	ExpiresAt      time.Time
}

func (t TypingChanged) Topic() Topic {
	return ConversationTopic(t.ConversationID)
}

type NotificationCreated struct {
	Notification chat.Notification
}

func (n NotificationCreated) Topic() Topic {
	return InboxTopic(n.Notification.Recipient)
}
