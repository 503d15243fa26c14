package services

import (
	"context"
	"log/slog"
	"teammate-chat/domain/event"
	"teammate-chat/infrastructure/storage"
	"teammate-chat/runtime"
	"teammate-chat/runtime/workers"
	"teammate-chat/sink"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	conversations *ConversationService
	messages      *MessageService
	presence      *PresenceService
	notifications *NotificationService
	notifier      *workers.NotifierWorker
	bus           *runtime.EventBus
	typing        *storage.TypingRepository
}

// newFixture wires the services on an in-memory store with a running
// fan-out worker, the way cmd/master does.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := slog.Default()
	db, err := storage.OpenInMemory(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conversationRepository := storage.NewConversationRepository(db, log)
	bus := runtime.NewEventBus(log, runtime.NewRegistry(), 64)
	notifications := NewNotificationService(log, storage.NewNotificationRepository(db, log), 16, 10)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	fanout := workers.NewEventFanoutWorker(log, bus.Registry(), bus.Events(), time.Second)
	go func() { _ = fanout.Run(ctx) }()

	return &fixture{
		conversations: NewConversationService(log, conversationRepository),
		messages: NewMessageService(log, conversationRepository,
			storage.NewMessageRepository(db, log), bus, notifications, 100),
		presence:      NewPresenceService(log, storage.NewTypingRepository(db, log), bus, 200*time.Millisecond),
		notifications: notifications,
		notifier: workers.NewNotifierWorker(log, storage.NewNotificationRepository(db, log),
			bus, notifications.Queue()),
		bus:    bus,
		typing: storage.NewTypingRepository(db, log),
	}
}

func (f *fixture) subscribe(t *testing.T, topic event.Topic) *sink.ChannelSink {
	t.Helper()
	s := sink.NewChannelSink(32)
	id := f.bus.Subscribe(topic, s)
	t.Cleanup(func() { f.bus.Unsubscribe(id) })
	return s
}

func next(t *testing.T, s *sink.ChannelSink) event.DomainEvent {
	t.Helper()
	select {
	case e := <-s.Events():
		return e
	case <-time.After(time.Second):
		require.FailNow(t, "no event received")
		return nil
	}
}

func nothing(t *testing.T, s *sink.ChannelSink) {
	t.Helper()
	select {
	case e := <-s.Events():
		require.FailNow(t, "unexpected event", "%#v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
