package storage

import (
	"log/slog"
	"teammate-chat/domain/chat"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newNotification(recipient chat.ParticipantID, at time.Time, preview string) chat.Notification {
	return chat.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Kind:      chat.KindChatMessage,
		Payload: chat.NotificationPayload{
			ConversationID: "conv-1",
			Sender:         "alice",
			ContentPreview: preview,
		},
		CreatedAt: at,
	}
}

func TestNotificationRepository_List_NewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewNotificationRepository(newTestDB(t), slog.Default())
	now := time.Now().UTC()

	req.NoError(repo.CreateNotification(newNotification("bob", now, "first")))
	req.NoError(repo.CreateNotification(newNotification("bob", now.Add(time.Minute), "second")))
	req.NoError(repo.CreateNotification(newNotification("clara", now, "other")))

	notifications, err := repo.ListNotifications("bob", false)
	req.NoError(err)
	req.Len(notifications, 2)
	req.Equal("second", notifications[0].Payload.ContentPreview)
	req.Equal("first", notifications[1].Payload.ContentPreview)
	req.Equal(chat.KindChatMessage, notifications[0].Kind)
	req.False(notifications[0].Read)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	req := require.New(t)
	repo := NewNotificationRepository(newTestDB(t), slog.Default())
	now := time.Now().UTC()

	first := newNotification("bob", now, "first")
	second := newNotification("bob", now.Add(time.Minute), "second")
	req.NoError(repo.CreateNotification(first))
	req.NoError(repo.CreateNotification(second))

	// Mark a single one
	updated, err := repo.MarkRead("bob", []uuid.UUID{first.ID})
	req.NoError(err)
	req.Equal(1, updated)

	unread, err := repo.ListNotifications("bob", true)
	req.NoError(err)
	req.Len(unread, 1)
	req.Equal(second.ID, unread[0].ID)

	// Empty list marks everything left
	updated, err = repo.MarkRead("bob", nil)
	req.NoError(err)
	req.Equal(1, updated)

	unread, err = repo.ListNotifications("bob", true)
	req.NoError(err)
	req.Empty(unread)
}

func TestNotificationRepository_Recipient_With_Separator_Is_Isolated(t *testing.T) {
	req := require.New(t)
	repo := NewNotificationRepository(newTestDB(t), slog.Default())
	now := time.Now().UTC()

	// Given an inbox for "a" and one for "a:b"
	req.NoError(repo.CreateNotification(newNotification("a", now, "for a")))
	req.NoError(repo.CreateNotification(newNotification("a:b", now, "for a:b")))

	// When "a" lists and marks its inbox
	notifications, err := repo.ListNotifications("a", false)
	req.NoError(err)
	req.Len(notifications, 1)
	req.Equal("for a", notifications[0].Payload.ContentPreview)

	updated, err := repo.MarkRead("a", nil)
	req.NoError(err)
	req.Equal(1, updated)

	// Then the other inbox is untouched
	unread, err := repo.ListNotifications("a:b", true)
	req.NoError(err)
	req.Len(unread, 1)
	req.Equal(chat.ParticipantID("a:b"), unread[0].Recipient)
}
