package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
	"teammate-chat/infrastructure/storage"
	"teammate-chat/mocks"
	"teammate-chat/runtime"
	"teammate-chat/runtime/workers"
	"teammate-chat/services"
	"teammate-chat/sink"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// gatedMessages holds History of a conversation until its gate is opened,
// and can be told to fail appends.
type gatedMessages struct {
	services.IMessageService
	mu         sync.Mutex
	gates      map[chat.ConversationID]chan struct{}
	failAppend bool
	appends    int
}

func (g *gatedMessages) gate(id chat.ConversationID) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := make(chan struct{})
	g.gates[id] = ch
	return ch
}

func (g *gatedMessages) History(ctx context.Context, id chat.ConversationID) ([]chat.Message, error) {
	g.mu.Lock()
	ch, ok := g.gates[id]
	g.mu.Unlock()
	if ok {
		<-ch
	}
	return g.IMessageService.History(ctx, id)
}

func (g *gatedMessages) Append(ctx context.Context, cmd chat.PostMessageCommand) (chat.Message, error) {
	g.mu.Lock()
	g.appends++
	fail := g.failAppend
	g.mu.Unlock()
	if fail {
		return chat.Message{}, fmt.Errorf("%w: store down", errors.ErrTransientIO)
	}
	return g.IMessageService.Append(ctx, cmd)
}

func (g *gatedMessages) appendCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.appends
}

// recordingPresence keeps the order of typing calls.
type recordingPresence struct {
	services.IPresenceService
	mu    sync.Mutex
	calls []string
}

func (r *recordingPresence) SetTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) {
	r.record("set:" + string(p))
	r.IPresenceService.SetTyping(ctx, id, p)
}

func (r *recordingPresence) ClearTyping(ctx context.Context, id chat.ConversationID, p chat.ParticipantID) {
	r.record("clear:" + string(p))
	r.IPresenceService.ClearTyping(ctx, id, p)
}

func (r *recordingPresence) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingPresence) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type env struct {
	deps          Dependencies
	bus           *runtime.EventBus
	conversations *services.ConversationService
	messages      *gatedMessages
	presence      *recordingPresence
	profiles      *storage.ProfileRepository
	cfg           Config
}

const typingDebounce = 80 * time.Millisecond

func newEnv(t *testing.T) *env {
	t.Helper()
	log := slog.Default()
	db, err := storage.OpenInMemory(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	bus := runtime.NewEventBus(log, runtime.NewRegistry(), 64)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fanout := workers.NewEventFanoutWorker(log, bus.Registry(), bus.Events(), time.Second)
	go func() { _ = fanout.Run(ctx) }()

	conversationRepository := storage.NewConversationRepository(db, log)
	conversations := services.NewConversationService(log, conversationRepository)
	messages := &gatedMessages{
		IMessageService: services.NewMessageService(log, conversationRepository,
			storage.NewMessageRepository(db, log), bus, nil, 100),
		gates: map[chat.ConversationID]chan struct{}{},
	}
	presence := &recordingPresence{
		IPresenceService: services.NewPresenceService(log, storage.NewTypingRepository(db, log), bus, typingDebounce),
	}
	profiles := storage.NewProfileRepository(db)

	return &env{
		deps: Dependencies{
			Conversations: conversations,
			Messages:      messages,
			Presence:      presence,
			Bus:           bus,
			Profiles:      profiles,
		},
		bus:           bus,
		conversations: conversations,
		messages:      messages,
		presence:      presence,
		profiles:      profiles,
		cfg: Config{
			TypingDebounce:        typingDebounce,
			TypingRefreshInterval: time.Second,
			TypingSweepInterval:   20 * time.Millisecond,
			SinkBufferSize:        16,
		},
	}
}

func (e *env) start(t *testing.T, p chat.ParticipantID) *Controller {
	t.Helper()
	c := NewController(slog.Default(), e.cfg, e.deps, chat.SessionContext{Participant: p})
	go func() { _ = c.Run(context.Background()) }()
	t.Cleanup(c.Close)
	return c
}

func (e *env) direct(t *testing.T, a, b chat.ParticipantID) chat.Conversation {
	t.Helper()
	conv, err := e.conversations.ResolveOrCreateDirect(context.Background(), a, b)
	require.NoError(t, err)
	return conv
}

func eventually(t *testing.T, c *Controller, cond func(v View) bool, msgAndArgs ...any) View {
	t.Helper()
	require.Eventually(t, func() bool { return cond(c.Snapshot()) }, 2*time.Second, 5*time.Millisecond, msgAndArgs...)
	return c.Snapshot()
}

func isActive(id chat.ConversationID) func(View) bool {
	return func(v View) bool { return v.State == StateActive && v.Active != nil && v.Active.ID == id }
}

func TestController_Loads_Chat_List_On_Start(t *testing.T) {
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")

	c := e.start(t, "alice")

	v := eventually(t, c, func(v View) bool { return len(v.Conversations) == 1 })
	require.Equal(t, conv.ID, v.Conversations[0].ID)
	require.Equal(t, StateUnselected, v.State)
}

func TestController_Receives_Messages_Of_Active_Conversation(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")
	req.NoError(e.profiles.PutProfile(storage.RawProfile{ID: "bob", FullName: "Bob Martin"}))

	alice := e.start(t, "alice")
	req.NoError(alice.SelectConversation(conv.ID))
	eventually(t, alice, isActive(conv.ID))

	// When bob sends a message
	_, err := e.messages.Append(context.Background(), chat.PostMessageCommand{ConversationID: conv.ID, Sender: "bob", Content: "hi"})
	req.NoError(err)

	// Then it shows in alice's view with bob's display name
	v := eventually(t, alice, func(v View) bool { return len(v.Messages) == 1 && v.DisplayName("bob") == "Bob Martin" })
	req.Equal("hi", v.Messages[0].Content)
}

func TestController_Late_History_Of_Previous_Selection_Is_Discarded(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	convA := e.direct(t, "alice", "bob")
	convB := e.direct(t, "alice", "carol")
	ctx := context.Background()
	_, err := e.messages.Append(ctx, chat.PostMessageCommand{ConversationID: convA.ID, Sender: "bob", Content: "from A"})
	req.NoError(err)
	_, err = e.messages.Append(ctx, chat.PostMessageCommand{ConversationID: convB.ID, Sender: "carol", Content: "from B"})
	req.NoError(err)

	// Given A's history is slow
	gateA := e.messages.gate(convA.ID)
	alice := e.start(t, "alice")

	// When alice selects A then B before A resolves
	req.NoError(alice.SelectConversation(convA.ID))
	req.NoError(alice.SelectConversation(convB.ID))
	eventually(t, alice, isActive(convB.ID))
	close(gateA)

	// Then the view stays on B with B's messages only
	time.Sleep(50 * time.Millisecond)
	v := alice.Snapshot()
	req.Equal(StateActive, v.State)
	req.Equal(convB.ID, v.Active.ID)
	req.Equal([]string{"from B"}, contents(v.Messages))
}

func TestController_Typing_Debounce(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")

	alice := e.start(t, "alice")
	bob := e.start(t, "bob")
	req.NoError(alice.SelectConversation(conv.ID))
	req.NoError(bob.SelectConversation(conv.ID))
	eventually(t, alice, isActive(conv.ID))
	eventually(t, bob, isActive(conv.ID))

	// When alice types three characters quickly
	req.NoError(alice.OnInputChange("h"))
	req.NoError(alice.OnInputChange("he"))
	req.NoError(alice.OnInputChange("hey"))

	// Then bob sees her typing, with a single set sent
	eventually(t, bob, func(v View) bool { return len(v.TypingParticipants()) == 1 })

	// And after the debounce window one clear follows
	require.Eventually(t, func() bool {
		calls := e.presence.Calls()
		return len(calls) == 2
	}, time.Second, 5*time.Millisecond)
	req.Equal([]string{"set:alice", "clear:alice"}, e.presence.Calls())
	eventually(t, bob, func(v View) bool { return len(v.Typing) == 0 })
	req.Equal("hey", alice.Snapshot().Input)
}

func TestController_Typing_Without_Refresh_Goes_Stale(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")

	bob := e.start(t, "bob")
	req.NoError(bob.SelectConversation(conv.ID))
	eventually(t, bob, isActive(conv.ID))

	// Given alice's signal claims a far expiry and is never refreshed nor cleared
	req.NoError(e.deps.Bus.Publish(context.Background(), event.TypingChanged{
		ConversationID: conv.ID,
		Participant:    "alice",
		IsTyping:       true,
		ExpiresAt:      time.Now().Add(time.Minute),
	}))
	eventually(t, bob, func(v View) bool { return len(v.TypingParticipants()) == 1 })

	// Then bob drops the indicator once the debounce window has passed,
	// long before the claimed expiry
	eventually(t, bob, func(v View) bool { return len(v.Typing) == 0 })
	req.Empty(e.presence.Calls())
}

func TestController_Lost_Subscription_Resubscribes_And_Reloads(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")
	topic := event.ConversationTopic(conv.ID)

	bob := e.start(t, "bob")
	req.NoError(bob.SelectConversation(conv.ID))
	before := eventually(t, bob, isActive(conv.ID))

	sinks := e.bus.Registry().GetSinksForTopic(topic)
	req.Len(sinks, 1)
	lostSink, ok := sinks[0].(*sink.ChannelSink)
	req.True(ok)

	// Given the fan-out gives up on bob's sink
	expired, cancel := context.WithCancel(context.Background())
	cancel()
	noop := event.TypingChanged{ConversationID: conv.ID, Participant: "carol"}
	req.Eventually(func() bool {
		_ = lostSink.Consume(expired, noop)
		select {
		case <-lostSink.Lost():
			return true
		default:
			return false
		}
	}, 2*time.Second, time.Millisecond)

	// Then bob reloads the conversation on a fresh subscription
	eventually(t, bob, func(v View) bool {
		return v.Generation > before.Generation && isActive(conv.ID)(v)
	})
	req.Eventually(func() bool {
		current := e.bus.Registry().GetSinksForTopic(topic)
		return len(current) == 1 && current[0] != contract.EventSink(lostSink)
	}, 2*time.Second, 5*time.Millisecond)

	// And keeps receiving live messages
	_, err := e.messages.Append(context.Background(), chat.PostMessageCommand{ConversationID: conv.ID, Sender: "alice", Content: "still here"})
	req.NoError(err)
	v := eventually(t, bob, func(v View) bool { return len(v.Messages) == 1 })
	req.Equal("still here", v.Messages[0].Content)
}

func TestController_Send(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")

	alice := e.start(t, "alice")

	// Nothing is sent while no conversation is active
	req.NoError(alice.SendMessage("hello"))

	req.NoError(alice.SelectConversation(conv.ID))
	eventually(t, alice, isActive(conv.ID))

	// Whitespace is never sent
	req.NoError(alice.SendMessage("   "))

	req.NoError(alice.OnInputChange("hello"))
	req.NoError(alice.SendMessage("hello"))

	// Then the message shows once and the input is cleared
	v := eventually(t, alice, func(v View) bool { return len(v.Messages) == 1 && v.Input == "" })
	req.Equal("hello", v.Messages[0].Content)
	req.Equal(1, e.messages.appendCount())

	// And typing was cleared with the send
	require.Eventually(t, func() bool {
		calls := e.presence.Calls()
		return len(calls) == 2 && calls[1] == "clear:alice"
	}, time.Second, 5*time.Millisecond)
}

func TestController_Send_Failure_Keeps_Input(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")
	alice := e.start(t, "alice")
	req.NoError(alice.SelectConversation(conv.ID))
	eventually(t, alice, isActive(conv.ID))

	e.messages.mu.Lock()
	e.messages.failAppend = true
	e.messages.mu.Unlock()

	req.NoError(alice.OnInputChange("hello"))
	req.NoError(alice.SendMessage("hello"))

	v := eventually(t, alice, func(v View) bool { return v.Err != nil })
	req.ErrorIs(v.Err, errors.ErrTransientIO)
	req.Equal("hello", v.Input)
	req.Empty(v.Messages)
}

func TestController_OpenDirect(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	alice := e.start(t, "alice")

	req.NoError(alice.OpenDirect("bob"))

	v := eventually(t, alice, func(v View) bool { return v.State == StateActive })
	req.ElementsMatch([]chat.ParticipantID{"alice", "bob"}, v.Active.Members)
	req.Len(v.Conversations, 1)

	// Opening again resolves the same conversation
	req.NoError(alice.OpenDirect("bob"))
	time.Sleep(30 * time.Millisecond)
	req.Len(alice.Snapshot().Conversations, 1)

	// Opening a chat with oneself is refused
	req.NoError(alice.OpenDirect("alice"))
	v = eventually(t, alice, func(v View) bool { return v.Err != nil })
	req.ErrorIs(v.Err, errors.ErrValidation)
}

func TestController_Select_Non_Member_Fails(t *testing.T) {
	e := newEnv(t)
	conv := e.direct(t, "bob", "carol")
	alice := e.start(t, "alice")

	require.NoError(t, alice.SelectConversation(conv.ID))

	v := eventually(t, alice, func(v View) bool { return v.Err != nil })
	require.Equal(t, StateUnselected, v.State)
	require.ErrorIs(t, v.Err, errors.ErrNotAuthorized)
}

func TestController_Rebind_Resets_Selection(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	conv := e.direct(t, "alice", "bob")
	e.direct(t, "carol", "dave")
	e.direct(t, "carol", "erin")

	c := e.start(t, "alice")
	req.NoError(c.SelectConversation(conv.ID))
	eventually(t, c, isActive(conv.ID))

	// When the session is rebound to carol
	req.NoError(c.Rebind(chat.SessionContext{Participant: "carol"}))

	// Then the view is unselected with carol's chat list
	v := eventually(t, c, func(v View) bool { return v.Participant == "carol" && len(v.Conversations) == 2 })
	req.Equal(StateUnselected, v.State)
	req.Nil(v.Active)
}

func TestController_Close(t *testing.T) {
	req := require.New(t)
	e := newEnv(t)
	c := e.start(t, "alice")

	c.Close()

	<-c.Done()
	req.Equal(StateClosed, c.Snapshot().State)
	req.ErrorIs(c.SelectConversation("c1"), errors.ErrSessionClosed)
}

func TestController_Display_Name_Lookup_Failure_Falls_Back_To_Id(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockIProfileDirectory(ctrl)
	e := newEnv(t)
	e.deps.Profiles = profiles
	conv := e.direct(t, "alice", "bob")

	// Given the profile of bob cannot be read, and is asked for only once
	profiles.EXPECT().LookupDisplayName(chat.ParticipantID("bob")).Return("", false, fmt.Errorf("store down")).Times(1)
	profiles.EXPECT().LookupDisplayName(chat.ParticipantID("alice")).Return("Alice", true, nil).AnyTimes()

	alice := e.start(t, "alice")
	req.NoError(alice.SelectConversation(conv.ID))
	eventually(t, alice, isActive(conv.ID))

	// When bob sends twice
	for _, content := range []string{"one", "two"} {
		_, err := e.messages.Append(context.Background(), chat.PostMessageCommand{ConversationID: conv.ID, Sender: "bob", Content: content})
		req.NoError(err)
	}

	// Then both messages render under bob's id
	v := eventually(t, alice, func(v View) bool { return len(v.Messages) == 2 })
	req.Equal("bob", v.DisplayName("bob"))
}
