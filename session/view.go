// Package session hosts the per-client chat session: the selected
// conversation, its live subscription and the typing lifecycle driven by
// raw input events.
package session

import (
	"slices"
	"teammate-chat/domain/chat"
	"time"

	"github.com/samber/lo"
)

type State int

const (
	StateUnselected State = iota
	StateLoading
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// View is what a client renders. Views handed out by the controller are
// copies and never change afterwards.
type View struct {
	Participant   chat.ParticipantID
	State         State
	Conversations []chat.Conversation
	// Active is set while Loading and Active.
	Active       *chat.Conversation
	Messages     []chat.Message
	Typing       map[chat.ParticipantID]time.Time
	DisplayNames map[chat.ParticipantID]string
	Input        string
	Err          error
	// Generation changes on every selection and rebind. Asynchronous
	// results carrying another generation are stale.
	Generation uint64
}

func NewView() View {
	return View{
		State:        StateUnselected,
		Typing:       map[chat.ParticipantID]time.Time{},
		DisplayNames: map[chat.ParticipantID]string{},
	}
}

// TypingParticipants lists who is currently typing, sorted.
func (v View) TypingParticipants() []chat.ParticipantID {
	typers := lo.Keys(v.Typing)
	slices.Sort(typers)
	return typers
}

// DisplayName falls back to the participant id when no name is known.
func (v View) DisplayName(p chat.ParticipantID) string {
	if name, ok := v.DisplayNames[p]; ok && name != "" {
		return name
	}
	return string(p)
}

func (v View) activeID() (chat.ConversationID, bool) {
	if v.Active == nil {
		return "", false
	}
	return v.Active.ID, true
}

func (v View) clone() View {
	c := v
	c.Conversations = slices.Clone(v.Conversations)
	c.Messages = slices.Clone(v.Messages)
	c.Typing = lo.Assign(v.Typing)
	c.DisplayNames = lo.Assign(v.DisplayNames)
	if v.Active != nil {
		active := *v.Active
		c.Active = &active
	}
	return c
}
