package chat

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type ConversationID string

func NewConversationID() ConversationID { return ConversationID(uuid.NewString()) }

func (c ConversationID) String() string { return string(c) }

// Conversation is either a direct conversation (exactly two members) or an
// opaque group container.
type Conversation struct {
	ID        ConversationID
	IsGroup   bool
	Title     *string
	Members   []ParticipantID
	CreatedAt time.Time
}

// IsDirect reports whether the conversation is restricted to two participants.
func (c Conversation) IsDirect() bool {
	return !c.IsGroup && len(c.Members) == 2
}

func (c Conversation) HasMember(p ParticipantID) bool {
	return slices.Contains(c.Members, p)
}

// Peer returns the other member of a direct conversation.
func (c Conversation) Peer(p ParticipantID) (ParticipantID, bool) {
	if !c.IsDirect() || !c.HasMember(p) {
		return "", false
	}
	for _, m := range c.Members {
		if m != p {
			return m, true
		}
	}
	return "", false
}

// PairKey is the unordered pair of participants of a direct conversation,
// normalized so that (a,b) and (b,a) produce the same key.
type PairKey struct {
	Low  ParticipantID
	High ParticipantID
}

func NewPairKey(a, b ParticipantID) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

func (k PairKey) Members() []ParticipantID {
	return []ParticipantID{k.Low, k.High}
}
