package workers

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newNotification() chat.Notification {
	return chat.Notification{
		ID:        uuid.New(),
		Recipient: "bob",
		Kind:      chat.KindChatMessage,
		Payload: chat.NotificationPayload{
			ConversationID: "conv-1",
			Sender:         "alice",
			ContentPreview: "hi",
		},
		CreatedAt: time.Now(),
	}
}

func TestNotifierWorker_Stores_Then_Publishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockINotificationRepository(ctrl)
	bus := mocks.NewMockIEventBus(ctrl)
	worker := NewNotifierWorker(slog.Default(), repo, bus, nil)
	n := newNotification()

	gomock.InOrder(
		repo.EXPECT().CreateNotification(n).Return(nil),
		bus.EXPECT().Publish(gomock.Any(), event.NotificationCreated{Notification: n}).Return(nil),
	)

	worker.Handle(context.Background(), n)
}

func TestNotifierWorker_Swallows_Store_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockINotificationRepository(ctrl)
	bus := mocks.NewMockIEventBus(ctrl)
	notifications := make(chan chat.Notification, 2)
	worker := NewNotifierWorker(slog.Default(), repo, bus, notifications)

	first, second := newNotification(), newNotification()

	// Given the store refuses the first write
	repo.EXPECT().CreateNotification(first).Return(fmt.Errorf("disk full"))
	repo.EXPECT().CreateNotification(second).Return(nil)
	// Then only the stored notification is pushed
	bus.EXPECT().Publish(gomock.Any(), event.NotificationCreated{Notification: second}).Return(nil)

	notifications <- first
	notifications <- second
	close(notifications)

	// When the worker drains its queue, it does not fail
	if err := worker.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
