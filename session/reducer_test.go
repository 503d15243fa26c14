package session

import (
	"fmt"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func msg(conv chat.ConversationID, sender chat.ParticipantID, content string, offset int) chat.Message {
	return chat.Message{
		ID:             uuid.New(),
		ConversationID: conv,
		Sender:         sender,
		Content:        content,
		CreatedAt:      base.Add(time.Duration(offset) * time.Second),
	}
}

func contents(messages []chat.Message) []string {
	return lo.Map(messages, func(m chat.Message, _ int) string { return m.Content })
}

func activeView(t *testing.T, conv chat.ConversationID) View {
	t.Helper()
	v := Reduce(NewView(), Rebound{Participant: "alice"})
	v = Reduce(v, SelectionStarted{Generation: v.Generation + 1, Conversation: chat.Conversation{ID: conv}})
	return Reduce(v, HistoryLoaded{Generation: v.Generation, Conversation: chat.Conversation{ID: conv, Members: []chat.ParticipantID{"alice", "bob"}}})
}

func TestReduce_History_Merges_Live_Messages(t *testing.T) {
	req := require.New(t)
	v := Reduce(NewView(), Rebound{Participant: "alice"})
	v = Reduce(v, SelectionStarted{Generation: v.Generation + 1, Conversation: chat.Conversation{ID: "c1"}})
	req.Equal(StateLoading, v.State)

	first, second, third := msg("c1", "bob", "one", 1), msg("c1", "bob", "two", 2), msg("c1", "alice", "three", 3)

	// Given live messages arrived while the history was loading
	v = Reduce(v, MessageReceived{Message: third})
	v = Reduce(v, MessageReceived{Message: second})

	// When the history snapshot lands, overlapping them
	v = Reduce(v, HistoryLoaded{
		Generation:   v.Generation,
		Conversation: chat.Conversation{ID: "c1"},
		Messages:     []chat.Message{first, second},
	})

	// Then every message appears once, in order
	req.Equal(StateActive, v.State)
	req.Equal([]string{"one", "two", "three"}, contents(v.Messages))
}

func TestReduce_Stale_History_Is_Discarded(t *testing.T) {
	req := require.New(t)
	v := Reduce(NewView(), Rebound{Participant: "alice"})

	// Given A then B were selected
	v = Reduce(v, SelectionStarted{Generation: v.Generation + 1, Conversation: chat.Conversation{ID: "A"}})
	genA := v.Generation
	v = Reduce(v, SelectionStarted{Generation: v.Generation + 1, Conversation: chat.Conversation{ID: "B"}})
	genB := v.Generation

	// When A's history arrives late
	v = Reduce(v, HistoryLoaded{Generation: genA, Conversation: chat.Conversation{ID: "A"}, Messages: []chat.Message{msg("A", "bob", "from A", 1)}})
	req.Equal(StateLoading, v.State)
	req.Empty(v.Messages)

	// Then only B's history is applied
	v = Reduce(v, HistoryLoaded{Generation: genB, Conversation: chat.Conversation{ID: "B"}, Messages: []chat.Message{msg("B", "bob", "from B", 1)}})
	req.Equal(StateActive, v.State)
	req.Equal(chat.ConversationID("B"), v.Active.ID)
	req.Equal([]string{"from B"}, contents(v.Messages))

	// And a late failure of A changes nothing
	after := Reduce(v, SelectionFailed{Generation: genA, ConversationID: "A", Err: fmt.Errorf("boom")})
	req.Equal(v, after)
}

func TestReduce_Selection_Failure(t *testing.T) {
	req := require.New(t)
	v := Reduce(NewView(), Rebound{Participant: "alice"})
	v = Reduce(v, SelectionStarted{Generation: v.Generation + 1, Conversation: chat.Conversation{ID: "c1"}})

	v = Reduce(v, SelectionFailed{Generation: v.Generation, ConversationID: "c1", Err: fmt.Errorf("unavailable")})

	req.Equal(StateUnselected, v.State)
	req.Nil(v.Active)
	req.EqualError(v.Err, "unavailable")
}

func TestReduce_Ignores_Other_Conversations(t *testing.T) {
	req := require.New(t)
	v := activeView(t, "c1")

	v = Reduce(v, MessageReceived{Message: msg("c2", "bob", "elsewhere", 1)})
	v = Reduce(v, TypingReceived{Event: event.TypingChanged{ConversationID: "c2", Participant: "bob", IsTyping: true, ExpiresAt: base}})

	req.Empty(v.Messages)
	req.Empty(v.Typing)
}

func TestReduce_Typing(t *testing.T) {
	req := require.New(t)
	v := activeView(t, "c1")

	// Own typing is never shown
	v = Reduce(v, TypingReceived{Event: event.TypingChanged{ConversationID: "c1", Participant: "alice", IsTyping: true, ExpiresAt: base.Add(time.Second)}})
	req.Empty(v.Typing)

	v = Reduce(v, TypingReceived{Event: event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base.Add(time.Second)}})
	req.Equal([]chat.ParticipantID{"bob"}, v.TypingParticipants())

	// Not yet expired
	v = Reduce(v, TypingExpired{Now: base})
	req.Len(v.Typing, 1)

	// Expired without an explicit clear
	v = Reduce(v, TypingExpired{Now: base.Add(2 * time.Second)})
	req.Empty(v.Typing)

	// A message from the typer ends the signal
	v = Reduce(v, TypingReceived{Event: event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base.Add(time.Minute)}})
	v = Reduce(v, MessageReceived{Message: msg("c1", "bob", "done", 1)})
	req.Empty(v.Typing)
}

func TestReduce_Typing_Goes_Stale_Without_Refresh(t *testing.T) {
	req := require.New(t)
	v := activeView(t, "c1")
	debounce := 1500 * time.Millisecond

	// Given bob's signal claims a far expiry but is bounded locally by the debounce window
	v = Reduce(v, TypingReceived{
		Event:      event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base.Add(time.Minute)},
		StaleAfter: base.Add(debounce),
	})

	// When a second passes without a refresh
	v = Reduce(v, TypingExpired{Now: base.Add(time.Second)})

	// Then bob is still shown
	req.Equal([]chat.ParticipantID{"bob"}, v.TypingParticipants())

	// When the debounce window elapses without a refresh
	v = Reduce(v, TypingExpired{Now: base.Add(debounce)})

	// Then the indicator is cleared
	req.Empty(v.Typing)

	// And a refresh within the window pushes the bound forward
	v = Reduce(v, TypingReceived{
		Event:      event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base.Add(3 * time.Second)},
		StaleAfter: base.Add(2 * time.Second),
	})
	v = Reduce(v, TypingReceived{
		Event:      event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base.Add(4 * time.Second)},
		StaleAfter: base.Add(3 * time.Second),
	})
	v = Reduce(v, TypingExpired{Now: base.Add(2500 * time.Millisecond)})
	req.Len(v.Typing, 1)
	v = Reduce(v, TypingExpired{Now: base.Add(3 * time.Second)})
	req.Empty(v.Typing)
}

func TestReduce_Input_And_Send(t *testing.T) {
	req := require.New(t)

	// Input is ignored while nothing is active
	v := Reduce(NewView(), InputChanged{Text: "hello"})
	req.Empty(v.Input)

	v = activeView(t, "c1")
	v = Reduce(v, InputChanged{Text: "hello"})
	req.Equal("hello", v.Input)

	// A failed send keeps the input as authored
	v = Reduce(v, SendFailed{ConversationID: "c1", Err: fmt.Errorf("unavailable")})
	req.Equal("hello", v.Input)
	req.Error(v.Err)

	// A successful send clears it and shows the message once
	sent := msg("c1", "alice", "hello", 1)
	v = Reduce(v, MessageSent{Message: sent})
	v = Reduce(v, MessageReceived{Message: sent})
	req.Empty(v.Input)
	req.NoError(v.Err)
	req.Equal([]string{"hello"}, contents(v.Messages))
}

func TestReduce_Is_Pure(t *testing.T) {
	req := require.New(t)
	v := activeView(t, "c1")
	v = Reduce(v, MessageReceived{Message: msg("c1", "bob", "one", 1)})
	v = Reduce(v, TypingReceived{Event: event.TypingChanged{ConversationID: "c1", Participant: "bob", IsTyping: true, ExpiresAt: base}})
	before := v.clone()

	_ = Reduce(v, MessageReceived{Message: msg("c1", "bob", "zero", 0)})
	_ = Reduce(v, TypingExpired{Now: base.Add(time.Hour)})
	_ = Reduce(v, NamesResolved{Names: map[chat.ParticipantID]string{"bob": "Bob"}})

	req.Equal(before, v)
}

func TestReduce_Rebind_And_Close(t *testing.T) {
	req := require.New(t)
	v := activeView(t, "c1")
	v = Reduce(v, NamesResolved{Names: map[chat.ParticipantID]string{"bob": "Bob"}})
	generation := v.Generation

	// Rebinding resets the selection but keeps the name cache
	v = Reduce(v, Rebound{Participant: "carol"})
	req.Equal(StateUnselected, v.State)
	req.Equal(chat.ParticipantID("carol"), v.Participant)
	req.Nil(v.Active)
	req.Greater(v.Generation, generation)
	req.Equal("Bob", v.DisplayName("bob"))
	req.Equal("dave", v.DisplayName("dave"))

	// A chat list loaded for the previous identity is dropped
	v = Reduce(v, ConversationsLoaded{Participant: "alice", Conversations: []chat.Conversation{{ID: "c1"}}})
	req.Empty(v.Conversations)

	v = Reduce(v, Closed{})
	req.Equal(StateClosed, v.State)
	req.Equal(StateClosed, Reduce(v, Rebound{Participant: "alice"}).State)
}
