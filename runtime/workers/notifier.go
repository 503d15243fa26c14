package workers

import (
	"context"
	"log/slog"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/infrastructure/storage"
)

var _ contract.Worker = (*NotifierWorker)(nil)

// NotifierWorker persists chat notifications off the send path.
// Everything it does is best-effort: a failed write is logged and dropped,
// it never reaches the sender.
type NotifierWorker struct {
	log          *slog.Logger
	repository   storage.INotificationRepository
	bus          contract.IEventBus
	notification <-chan chat.Notification
}

func NewNotifierWorker(log *slog.Logger, repository storage.INotificationRepository,
	bus contract.IEventBus, notification <-chan chat.Notification) *NotifierWorker {
	return &NotifierWorker{
		log:          log,
		repository:   repository,
		bus:          bus,
		notification: notification,
	}
}

func (w *NotifierWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping notifier")
			return nil
		case n, ok := <-w.notification:
			if !ok {
				return nil
			}
			w.Handle(ctx, n)
		}
	}
}

func (w *NotifierWorker) Handle(ctx context.Context, n chat.Notification) {
	if err := w.repository.CreateNotification(n); err != nil {
		w.log.Warn("Notification dropped",
			"recipient", n.Recipient,
			"conversation_id", n.Payload.ConversationID,
			"error", err)
		return
	}
	if err := w.bus.Publish(ctx, event.NotificationCreated{Notification: n}); err != nil {
		w.log.Debug("Notification stored but not pushed", "recipient", n.Recipient, "error", err)
	}
}
