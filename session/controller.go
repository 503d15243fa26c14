package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
	"teammate-chat/infrastructure/storage"
	"teammate-chat/services"
	"teammate-chat/sink"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	TypingDebounce        time.Duration
	TypingRefreshInterval time.Duration
	TypingSweepInterval   time.Duration
	SinkBufferSize        int
}

type Dependencies struct {
	Conversations services.IConversationService
	Messages      services.IMessageService
	Presence      services.IPresenceService
	Bus           contract.IEventBus
	Profiles      storage.IProfileDirectory
}

type (
	selectOp     struct{ id chat.ConversationID }
	openDirectOp struct{ peer chat.ParticipantID }
	inputOp      struct{ text string }
	sendOp       struct{ text string }
	rebindOp     struct{ sc chat.SessionContext }
	closeOp      struct{}
	resultOp     struct{ action Action }
	resolvedOp   struct {
		generation uint64
		conv       chat.Conversation
		err        error
	}
	sentOp struct {
		conv chat.ConversationID
		msg  chat.Message
		err  error
	}
)

// Controller is the per-client session. Every state change happens on the
// goroutine running Run: public methods and finished I/O only post into its
// inbox. Views are published after each change on a latest-wins channel.
type Controller struct {
	log   *slog.Logger
	cfg   Config
	deps  Dependencies
	clock func() time.Time

	inbox   chan any
	views   chan View
	done    chan struct{}
	ctx     context.Context
	mu      sync.RWMutex
	current View

	// Loop-owned state.
	view           View
	session        chat.SessionContext
	sink           *sink.ChannelSink
	subscription   contract.SubscriptionID
	debounce       *time.Timer
	typingSentAt   time.Time
	typingFor      chat.ConversationID
	presenceQueue  chan func(ctx context.Context)
	requestedNames map[chat.ParticipantID]struct{}
}

func NewController(log *slog.Logger, cfg Config, deps Dependencies, sc chat.SessionContext) *Controller {
	c := &Controller{
		log:            log,
		cfg:            cfg,
		deps:           deps,
		clock:          time.Now,
		inbox:          make(chan any, 64),
		views:          make(chan View, 1),
		done:           make(chan struct{}),
		ctx:            context.Background(),
		view:           NewView(),
		presenceQueue:  make(chan func(ctx context.Context), 32),
		requestedNames: map[chat.ParticipantID]struct{}{},
	}
	c.current = c.view.clone()
	c.inbox <- rebindOp{sc: sc}
	return c
}

// Views delivers the latest view. Intermediate views may be skipped by a
// slow reader, the last one never is.
func (c *Controller) Views() <-chan View {
	return c.views
}

// Snapshot returns the last published view.
func (c *Controller) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.clone()
}

// Done is closed once the session is torn down.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) SelectConversation(id chat.ConversationID) error {
	return c.post(selectOp{id: id})
}

// OpenDirect resolves or creates the direct conversation with peer, then
// selects it.
func (c *Controller) OpenDirect(peer chat.ParticipantID) error {
	return c.post(openDirectOp{peer: peer})
}

func (c *Controller) OnInputChange(text string) error {
	return c.post(inputOp{text: text})
}

func (c *Controller) SendMessage(text string) error {
	return c.post(sendOp{text: text})
}

// Rebind is the single point where the identity of the session changes.
func (c *Controller) Rebind(sc chat.SessionContext) error {
	return c.post(rebindOp{sc: sc})
}

// Close tears the session down and waits for the loop to exit.
func (c *Controller) Close() {
	if err := c.post(closeOp{}); err != nil {
		return
	}
	<-c.done
}

func (c *Controller) post(op any) error {
	select {
	case <-c.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case c.inbox <- op:
		return nil
	case <-c.done:
		return errors.ErrSessionClosed
	}
}

// Run is the session loop. It returns when ctx is done or Close is called.
func (c *Controller) Run(ctx context.Context) error {
	c.ctx = ctx
	defer close(c.done)

	presenceCtx, stopPresence := context.WithCancel(context.WithoutCancel(ctx))
	presenceDone := make(chan struct{})
	go c.runPresence(presenceCtx, presenceDone)
	defer func() {
		close(c.presenceQueue)
		<-presenceDone
		stopPresence()
	}()

	sweep := time.NewTicker(c.cfg.TypingSweepInterval)
	defer sweep.Stop()
	c.debounce = time.NewTimer(time.Hour)
	c.stopDebounce()
	defer c.debounce.Stop()

	for {
		var events <-chan event.DomainEvent
		var lost <-chan struct{}
		if c.sink != nil {
			events = c.sink.Events()
			lost = c.sink.Lost()
		}

		select {
		case <-ctx.Done():
			c.teardown()
			return nil

		case op := <-c.inbox:
			if _, ok := op.(closeOp); ok {
				c.teardown()
				return nil
			}
			c.handle(op)

		case e := <-events:
			c.handleEvent(e)

		case <-lost:
			c.resubscribe()

		case <-c.debounce.C:
			c.clearTyping()

		case now := <-sweep.C:
			if len(c.view.Typing) > 0 {
				c.apply(TypingExpired{Now: now})
			}
		}
	}
}

func (c *Controller) handle(op any) {
	switch op := op.(type) {
	case rebindOp:
		c.rebind(op.sc)
	case selectOp:
		c.selectConversation(chat.Conversation{ID: op.id}, true)
	case openDirectOp:
		c.openDirect(op.peer)
	case resolvedOp:
		c.onResolved(op)
	case inputOp:
		c.input(op.text)
	case sendOp:
		c.send(op.text)
	case sentOp:
		c.onSent(op)
	case resultOp:
		c.onResult(op.action)
	}
}

func (c *Controller) handleEvent(e event.DomainEvent) {
	switch e := e.(type) {
	case event.MessageAppended:
		c.apply(MessageReceived{Message: e.Message})
		c.resolveNames(e.Message.Sender)
	case event.TypingChanged:
		c.apply(TypingReceived{Event: e, StaleAfter: c.clock().Add(c.cfg.TypingDebounce)})
	}
}

func (c *Controller) rebind(sc chat.SessionContext) {
	c.clearTyping()
	c.unsubscribe()
	c.session = sc
	c.apply(Rebound{Participant: sc.Participant})
	if !sc.Authenticated() {
		return
	}

	participant := sc.Participant
	c.async(func(ctx context.Context) any {
		conversations, err := c.deps.Conversations.ListConversations(ctx, participant)
		if err != nil {
			c.log.Warn("Chat list not loaded", "participant", participant, "error", err)
			return nil
		}
		return resultOp{action: ConversationsLoaded{Participant: participant, Conversations: conversations}}
	})
}

// selectConversation subscribes before loading the history so no message
// appended in between is missed; the reducer merges both by id.
func (c *Controller) selectConversation(conv chat.Conversation, lookup bool) {
	if !c.session.Authenticated() {
		return
	}
	if lookup {
		if known, ok := lo.Find(c.view.Conversations, func(k chat.Conversation) bool { return k.ID == conv.ID }); ok {
			conv = known
		}
	}

	c.clearTyping()
	c.unsubscribe()

	c.sink = sink.NewChannelSink(c.cfg.SinkBufferSize)
	c.subscription = c.deps.Bus.Subscribe(event.ConversationTopic(conv.ID), c.sink)

	generation := c.view.Generation + 1
	c.apply(SelectionStarted{Generation: generation, Conversation: conv})

	participant := c.session.Participant
	c.async(func(ctx context.Context) any {
		loaded, err := c.deps.Conversations.Get(ctx, conv.ID)
		if err == nil && !loaded.HasMember(participant) {
			err = fmt.Errorf("%w: %s is not a member of %s", errors.ErrNotAuthorized, participant, conv.ID)
		}
		if err != nil {
			return resultOp{action: SelectionFailed{Generation: generation, ConversationID: conv.ID, Err: err}}
		}
		messages, err := c.deps.Messages.History(ctx, conv.ID)
		if err != nil {
			return resultOp{action: SelectionFailed{Generation: generation, ConversationID: conv.ID, Err: err}}
		}
		return resultOp{action: HistoryLoaded{
			Generation:   generation,
			Conversation: loaded,
			Messages:     messages,
			Typing:       c.deps.Presence.Typing(ctx, conv.ID),
		}}
	})
}

func (c *Controller) openDirect(peer chat.ParticipantID) {
	if !c.session.Authenticated() {
		return
	}
	generation := c.view.Generation
	participant := c.session.Participant
	c.async(func(ctx context.Context) any {
		conv, err := c.deps.Conversations.ResolveOrCreateDirect(ctx, participant, peer)
		return resolvedOp{generation: generation, conv: conv, err: err}
	})
}

func (c *Controller) onResolved(op resolvedOp) {
	if op.err != nil {
		c.log.Warn("Direct conversation not resolved", "participant", c.session.Participant, "error", op.err)
		c.apply(ResolveFailed{Generation: op.generation, Err: op.err})
		return
	}
	c.apply(ConversationAdded{Conversation: op.conv})
	// The user moved on while resolving: keep the conversation listed only.
	if op.generation != c.view.Generation {
		return
	}
	c.selectConversation(op.conv, false)
}

func (c *Controller) onResult(a Action) {
	if failed, ok := a.(SelectionFailed); ok && c.view.isCurrent(failed.Generation, failed.ConversationID) {
		c.log.Warn("Conversation not loaded", "conversation_id", failed.ConversationID, "error", failed.Err)
		c.unsubscribe()
	}
	c.apply(a)

	switch a := a.(type) {
	case ConversationsLoaded:
		for _, conv := range a.Conversations {
			c.resolveNames(conv.Members...)
		}
	case HistoryLoaded:
		c.resolveNames(a.Conversation.Members...)
	}
}

// input drives the typing signal: set at most once per refresh interval,
// cleared by the debounce timer once the user stops typing.
func (c *Controller) input(text string) {
	if c.view.State != StateActive {
		return
	}
	c.apply(InputChanged{Text: text})

	if strings.TrimSpace(text) == "" {
		c.clearTyping()
		return
	}

	id := c.view.Active.ID
	now := c.clock()
	if c.typingFor != id || now.Sub(c.typingSentAt) >= c.cfg.TypingRefreshInterval {
		participant := c.session.Participant
		c.typingFor = id
		c.typingSentAt = now
		c.enqueuePresence(func(ctx context.Context) {
			c.deps.Presence.SetTyping(ctx, id, participant)
		})
	}
	c.stopDebounce()
	c.debounce.Reset(c.cfg.TypingDebounce)
}

func (c *Controller) clearTyping() {
	c.stopDebounce()
	if c.typingFor == "" {
		return
	}
	id, participant := c.typingFor, c.session.Participant
	c.typingFor = ""
	c.typingSentAt = time.Time{}
	c.enqueuePresence(func(ctx context.Context) {
		c.deps.Presence.ClearTyping(ctx, id, participant)
	})
}

func (c *Controller) send(text string) {
	content := strings.TrimSpace(text)
	if content == "" || c.view.State != StateActive || !c.session.Authenticated() {
		return
	}
	cmd := chat.PostMessageCommand{
		ConversationID: c.view.Active.ID,
		Sender:         c.session.Participant,
		Content:        content,
	}
	c.async(func(ctx context.Context) any {
		msg, err := c.deps.Messages.Append(ctx, cmd)
		return sentOp{conv: cmd.ConversationID, msg: msg, err: err}
	})
}

func (c *Controller) onSent(op sentOp) {
	if op.err != nil {
		c.log.Warn("Message not sent", "conversation_id", op.conv, "error", op.err)
		c.apply(SendFailed{ConversationID: op.conv, Err: op.err})
		return
	}
	c.apply(MessageSent{Message: op.msg})
	if c.typingFor == op.conv {
		c.clearTyping()
	}
}

// resubscribe handles a lost subscription: events were dropped, so the
// conversation is subscribed again and reloaded from history.
func (c *Controller) resubscribe() {
	c.log.Warn("Session subscription lost, reloading", "participant", c.session.Participant)
	if c.view.Active == nil {
		c.unsubscribe()
		return
	}
	c.selectConversation(*c.view.Active, false)
}

func (c *Controller) resolveNames(participants ...chat.ParticipantID) {
	if c.deps.Profiles == nil {
		return
	}
	missing := lo.Filter(lo.Uniq(participants), func(p chat.ParticipantID, _ int) bool {
		_, requested := c.requestedNames[p]
		return !requested
	})
	if len(missing) == 0 {
		return
	}
	for _, p := range missing {
		c.requestedNames[p] = struct{}{}
	}
	c.async(func(context.Context) any {
		names := make(map[chat.ParticipantID]string, len(missing))
		for _, p := range missing {
			name, ok, err := c.deps.Profiles.LookupDisplayName(p)
			if err != nil {
				c.log.Debug("Display name not resolved", "participant", p, "error", err)
				continue
			}
			if ok {
				names[p] = name
			}
		}
		if len(names) == 0 {
			return nil
		}
		return resultOp{action: NamesResolved{Names: names}}
	})
}

func (c *Controller) teardown() {
	c.clearTyping()
	c.unsubscribe()
	c.apply(Closed{})
}

func (c *Controller) unsubscribe() {
	if c.sink == nil {
		return
	}
	c.deps.Bus.Unsubscribe(c.subscription)
	c.sink = nil
	c.subscription = ""
}

func (c *Controller) apply(a Action) {
	next := Reduce(c.view, a)
	c.view = next
	c.publish()
}

func (c *Controller) publish() {
	v := c.view.clone()
	c.mu.Lock()
	c.current = v
	c.mu.Unlock()

	select {
	case <-c.views:
	default:
	}
	c.views <- v.clone()
}

// async runs fn off the loop and posts its result, if any, back into the
// inbox.
func (c *Controller) async(fn func(ctx context.Context) any) {
	ctx := c.ctx
	go func() {
		if result := fn(ctx); result != nil {
			_ = c.post(result)
		}
	}()
}

// enqueuePresence keeps SetTyping and ClearTyping in call order.
func (c *Controller) enqueuePresence(fn func(ctx context.Context)) {
	select {
	case c.presenceQueue <- fn:
	default:
		c.log.Debug("Presence queue full, dropping typing update", "participant", c.session.Participant)
	}
}

func (c *Controller) runPresence(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	for fn := range c.presenceQueue {
		fn(ctx)
	}
}

func (c *Controller) stopDebounce() {
	if !c.debounce.Stop() {
		select {
		case <-c.debounce.C:
		default:
		}
	}
}
