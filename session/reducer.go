package session

import (
	"slices"
	"sort"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"time"

	"github.com/samber/lo"
)

// Action is anything the controller feeds to Reduce.
type Action interface {
	isAction()
}

type Rebound struct {
	Participant chat.ParticipantID
}

type ConversationsLoaded struct {
	Participant   chat.ParticipantID
	Conversations []chat.Conversation
}

type ConversationAdded struct {
	Conversation chat.Conversation
}

type SelectionStarted struct {
	Generation   uint64
	Conversation chat.Conversation
}

type HistoryLoaded struct {
	Generation   uint64
	Conversation chat.Conversation
	Messages     []chat.Message
	Typing       []chat.TypingSignal
}

type SelectionFailed struct {
	Generation     uint64
	ConversationID chat.ConversationID
	Err            error
}

// ResolveFailed reports a failed OpenDirect.
type ResolveFailed struct {
	Generation uint64
	Err        error
}

type MessageReceived struct {
	Message chat.Message
}

// TypingReceived shows or clears a remote typer. StaleAfter is the local
// bound on how long the indicator survives without a refresh; the earlier
// of it and the event's own expiry wins. Zero keeps the event's expiry.
type TypingReceived struct {
	Event      event.TypingChanged
	StaleAfter time.Time
}

type TypingExpired struct {
	Now time.Time
}

type InputChanged struct {
	Text string
}

type MessageSent struct {
	Message chat.Message
}

type SendFailed struct {
	ConversationID chat.ConversationID
	Err            error
}

type NamesResolved struct {
	Names map[chat.ParticipantID]string
}

type Closed struct{}

func (Rebound) isAction()             {}
func (ConversationsLoaded) isAction() {}
func (ConversationAdded) isAction()   {}
func (SelectionStarted) isAction()    {}
func (HistoryLoaded) isAction()       {}
func (SelectionFailed) isAction()     {}
func (ResolveFailed) isAction()       {}
func (MessageReceived) isAction()     {}
func (TypingReceived) isAction()      {}
func (TypingExpired) isAction()       {}
func (InputChanged) isAction()        {}
func (MessageSent) isAction()         {}
func (SendFailed) isAction()          {}
func (NamesResolved) isAction()       {}
func (Closed) isAction()              {}

// Reduce computes the next view. It has no side effects and never mutates
// the slices or maps of v.
func Reduce(v View, a Action) View {
	if v.State == StateClosed {
		return v
	}
	next := v.clone()

	switch a := a.(type) {
	case Rebound:
		next = NewView()
		next.Participant = a.Participant
		next.DisplayNames = lo.Assign(v.DisplayNames)
		next.Generation = v.Generation + 1

	case ConversationsLoaded:
		if a.Participant != v.Participant {
			return v
		}
		next.Conversations = slices.Clone(a.Conversations)

	case ConversationAdded:
		next.Conversations = addConversation(next.Conversations, a.Conversation)

	case SelectionStarted:
		conv := a.Conversation
		next.State = StateLoading
		next.Active = &conv
		next.Messages = nil
		next.Typing = map[chat.ParticipantID]time.Time{}
		next.Input = ""
		next.Err = nil
		next.Generation = a.Generation

	case HistoryLoaded:
		if !v.isCurrent(a.Generation, a.Conversation.ID) {
			return v
		}
		conv := a.Conversation
		next.State = StateActive
		next.Active = &conv
		next.Messages = mergeMessages(a.Messages, v.Messages)
		for _, signal := range a.Typing {
			if signal.Participant != v.Participant {
				next.Typing[signal.Participant] = signal.ExpiresAt
			}
		}
		next.Conversations = addConversation(next.Conversations, conv)

	case SelectionFailed:
		if !v.isCurrent(a.Generation, a.ConversationID) {
			return v
		}
		next.State = StateUnselected
		next.Active = nil
		next.Messages = nil
		next.Typing = map[chat.ParticipantID]time.Time{}
		next.Err = a.Err

	case ResolveFailed:
		if a.Generation != v.Generation {
			return v
		}
		next.Err = a.Err

	case MessageReceived:
		if id, ok := v.activeID(); !ok || id != a.Message.ConversationID {
			return v
		}
		next.Messages = insertMessage(next.Messages, a.Message)
		// A message ends its author's typing.
		delete(next.Typing, a.Message.Sender)

	case TypingReceived:
		if id, ok := v.activeID(); !ok || id != a.Event.ConversationID {
			return v
		}
		if a.Event.Participant == v.Participant {
			return v
		}
		if a.Event.IsTyping {
			next.Typing[a.Event.Participant] = a.expiresAt()
		} else {
			delete(next.Typing, a.Event.Participant)
		}

	case TypingExpired:
		for p, expiresAt := range v.Typing {
			if !expiresAt.After(a.Now) {
				delete(next.Typing, p)
			}
		}

	case InputChanged:
		if v.State != StateActive {
			return v
		}
		next.Input = a.Text

	case MessageSent:
		if id, ok := v.activeID(); !ok || id != a.Message.ConversationID {
			return v
		}
		next.Messages = insertMessage(next.Messages, a.Message)
		next.Input = ""
		next.Err = nil

	case SendFailed:
		if id, ok := v.activeID(); !ok || id != a.ConversationID {
			return v
		}
		next.Err = a.Err

	case NamesResolved:
		for p, name := range a.Names {
			next.DisplayNames[p] = name
		}

	case Closed:
		next.State = StateClosed
		next.Typing = map[chat.ParticipantID]time.Time{}

	default:
		return v
	}
	return next
}

func (v View) isCurrent(generation uint64, id chat.ConversationID) bool {
	active, ok := v.activeID()
	return ok && v.Generation == generation && active == id
}

func addConversation(conversations []chat.Conversation, conv chat.Conversation) []chat.Conversation {
	if lo.ContainsBy(conversations, func(c chat.Conversation) bool { return c.ID == conv.ID }) {
		return conversations
	}
	return append(slices.Clone(conversations), conv)
}

// insertMessage places msg at its (CreatedAt, ID) position. A message
// already present is ignored.
func insertMessage(messages []chat.Message, msg chat.Message) []chat.Message {
	if lo.ContainsBy(messages, func(m chat.Message) bool { return m.ID == msg.ID }) {
		return messages
	}
	i := sort.Search(len(messages), func(i int) bool { return msg.Before(messages[i]) })
	res := make([]chat.Message, 0, len(messages)+1)
	res = append(res, messages[:i]...)
	res = append(res, msg)
	return append(res, messages[i:]...)
}

// mergeMessages combines a history snapshot with live messages received
// while it was loading.
func mergeMessages(history, live []chat.Message) []chat.Message {
	res := slices.Clone(history)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Before(res[j]) })
	for _, m := range live {
		res = insertMessage(res, m)
	}
	return res
}

func (a TypingReceived) expiresAt() time.Time {
	expiresAt := a.Event.ExpiresAt
	if a.StaleAfter.IsZero() {
		return expiresAt
	}
	if expiresAt.IsZero() || a.StaleAfter.Before(expiresAt) {
		return a.StaleAfter
	}
	return expiresAt
}
