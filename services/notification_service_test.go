package services

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/mocks"
	"teammate-chat/runtime/workers"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_Direct_Send_Notifies_Peer(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.notifier.Run(ctx) }()

	conv, err := f.conversations.ResolveOrCreateDirect(ctx, "alice", "bob")
	req.NoError(err)
	inbox := f.subscribe(t, event.InboxTopic("bob"))

	// When alice sends a long message
	_, err = f.messages.Append(ctx, chat.PostMessageCommand{
		ConversationID: conv.ID, Sender: "alice", Content: "hello bob, how are you",
	})
	req.NoError(err)

	// Then bob's inbox is pushed and stored
	created := next(t, inbox).(event.NotificationCreated)
	req.Equal(chat.ParticipantID("bob"), created.Notification.Recipient)
	req.Equal(chat.KindChatMessage, created.Notification.Kind)
	req.Equal(conv.ID, created.Notification.Payload.ConversationID)
	req.Equal("hello bob,…", created.Notification.Payload.ContentPreview)

	unread, err := f.notifications.List(ctx, "bob", true)
	req.NoError(err)
	req.Len(unread, 1)

	// And alice gets nothing
	none, err := f.notifications.List(ctx, "alice", false)
	req.NoError(err)
	req.Empty(none)

	// When bob reads everything
	n, err := f.notifications.MarkRead(ctx, "bob", nil)
	req.NoError(err)
	req.Equal(1, n)

	unread, err = f.notifications.List(ctx, "bob", true)
	req.NoError(err)
	req.Empty(unread)
}

func TestNotificationService_Group_Send_Notifies_Nobody(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{Members: []chat.ParticipantID{"alice", "bob", "clara"}})
	require.NoError(t, err)

	_, err = f.messages.Append(ctx, chat.PostMessageCommand{ConversationID: group.ID, Sender: "alice", Content: "hi all"})
	require.NoError(t, err)

	require.Empty(t, f.notifications.Queue())
}

func TestNotificationService_Failure_Does_Not_Affect_Send(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given a notification store that always fails
	failing := mocks.NewMockINotificationRepository(ctrl)
	stored := make(chan struct{})
	failing.EXPECT().CreateNotification(gomock.Any()).
		DoAndReturn(func(chat.Notification) error {
			close(stored)
			return fmt.Errorf("disk full")
		})
	worker := workers.NewNotifierWorker(slog.Default(), failing, f.bus, f.notifications.Queue())
	go func() { _ = worker.Run(ctx) }()

	conv, err := f.conversations.ResolveOrCreateDirect(ctx, "alice", "bob")
	req.NoError(err)
	s := f.subscribe(t, event.ConversationTopic(conv.ID))

	// When alice sends
	msg, err := f.messages.Append(ctx, chat.PostMessageCommand{ConversationID: conv.ID, Sender: "alice", Content: "hi"})

	// Then the send succeeds and is delivered anyway
	req.NoError(err)
	req.Equal(msg.ID, next(t, s).(event.MessageAppended).Message.ID)

	select {
	case <-stored:
	case <-time.After(time.Second):
		req.Fail("notification was never attempted")
	}
}
