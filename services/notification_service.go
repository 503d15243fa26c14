package services

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	"teammate-chat/infrastructure/storage"
	"time"

	"github.com/google/uuid"
)

type INotificationService interface {
	DirectNotifier
	List(ctx context.Context, recipient chat.ParticipantID, unreadOnly bool) ([]chat.Notification, error)
	MarkRead(ctx context.Context, recipient chat.ParticipantID, ids []uuid.UUID) (int, error)
}

// NotificationService raises chat_message notifications without ever
// blocking or failing a send: notifications are queued for the
// NotifierWorker and dropped when the queue is full.
type NotificationService struct {
	log           *slog.Logger
	repository    storage.INotificationRepository
	queue         chan chat.Notification
	previewLength int
	clock         func() time.Time
}

func NewNotificationService(log *slog.Logger, repository storage.INotificationRepository,
	queueSize, previewLength int) *NotificationService {
	return &NotificationService{
		log:           log,
		repository:    repository,
		queue:         make(chan chat.Notification, queueSize),
		previewLength: previewLength,
		clock:         time.Now,
	}
}

// NotifyDirect enqueues a notification for the member of conv who did not
// send msg. Groups get nothing.
func (s *NotificationService) NotifyDirect(conv chat.Conversation, msg chat.Message) {
	recipient, ok := conv.Peer(msg.Sender)
	if !ok {
		return
	}
	n := chat.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Kind:      chat.KindChatMessage,
		Payload: chat.NotificationPayload{
			ConversationID: conv.ID,
			Sender:         msg.Sender,
			ContentPreview: chat.Preview(msg.Content, s.previewLength),
		},
		CreatedAt: s.clock().UTC(),
	}
	select {
	case s.queue <- n:
	default:
		s.log.Warn("Notification queue full, dropping notification",
			"recipient", recipient, "conversation_id", conv.ID)
	}
}

// Queue is consumed by the NotifierWorker.
func (s *NotificationService) Queue() <-chan chat.Notification {
	return s.queue
}

// List returns the inbox of recipient, newest first.
func (s *NotificationService) List(ctx context.Context, recipient chat.ParticipantID, unreadOnly bool) ([]chat.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if recipient.IsZero() {
		return nil, fmt.Errorf("%w: recipient is required", errors.ErrValidation)
	}
	notifications, err := s.repository.ListNotifications(recipient, unreadOnly)
	if err != nil {
		return nil, transient(err)
	}
	return notifications, nil
}

// MarkRead flags notifications of recipient as read; no ids means all.
func (s *NotificationService) MarkRead(ctx context.Context, recipient chat.ParticipantID, ids []uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if recipient.IsZero() {
		return 0, fmt.Errorf("%w: recipient is required", errors.ErrValidation)
	}
	n, err := s.repository.MarkRead(recipient, ids)
	if err != nil {
		return 0, transient(err)
	}
	return n, nil
}
