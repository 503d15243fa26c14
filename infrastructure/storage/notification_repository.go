//go:generate go run go.uber.org/mock/mockgen -source=notification_repository.go -destination=../../mocks/mock_notification_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	pb "teammate-chat/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

type INotificationRepository interface {
	CreateNotification(n chat.Notification) error
	ListNotifications(recipient chat.ParticipantID, unreadOnly bool) ([]chat.Notification, error)
	MarkRead(recipient chat.ParticipantID, ids []uuid.UUID) (int, error)
}

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, log: log}
}

func notificationKey(n chat.Notification) []byte {
	return key("notif", string(n.Recipient), sortableTime(n.CreatedAt), n.ID.String())
}

func notificationPrefix(recipient chat.ParticipantID) []byte {
	return prefix("notif", string(recipient))
}

func (r *NotificationRepository) CreateNotification(n chat.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return putNotification(txn, n)
	})
}

// ListNotifications returns the recipient's notifications, newest first.
func (r *NotificationRepository) ListNotifications(recipient chat.ParticipantID, unreadOnly bool) ([]chat.Notification, error) {
	var notifications []chat.Notification
	prefix := notificationPrefix(recipient)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key below the seek key.
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				n, err := unmarshalNotification(val)
				if err != nil {
					return err
				}
				if !unreadOnly || !n.Read {
					notifications = append(notifications, n)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return notifications, err
}

// MarkRead flags the given notifications of the recipient as read. An empty
// id list marks all of them. It returns how many were updated.
func (r *NotificationRepository) MarkRead(recipient chat.ParticipantID, ids []uuid.UUID) (int, error) {
	wanted := lo.SliceToMap(ids, func(id uuid.UUID) (uuid.UUID, struct{}) {
		return id, struct{}{}
	})
	updated := 0
	prefix := notificationPrefix(recipient)

	err := r.db.Update(func(txn *badger.Txn) error {
		toWrite, err := unreadMatching(txn, prefix, wanted)
		if err != nil {
			return err
		}
		for _, n := range toWrite {
			if err := putNotification(txn, n); err != nil {
				return err
			}
		}
		updated = len(toWrite)
		return nil
	})
	return updated, err
}

// unreadMatching collects unread notifications under prefix, restricted to
// wanted when it is not empty. The iterator is closed before any write.
func unreadMatching(txn *badger.Txn, prefix []byte, wanted map[uuid.UUID]struct{}) ([]chat.Notification, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var res []chat.Notification
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			n, err := unmarshalNotification(val)
			if err != nil {
				return err
			}
			if n.Read {
				return nil
			}
			if _, ok := wanted[n.ID]; len(wanted) > 0 && !ok {
				return nil
			}
			n.Read = true
			res = append(res, n)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func putNotification(txn *badger.Txn, n chat.Notification) error {
	data, err := proto.Marshal(toPbNotification(n))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	return txn.Set(notificationKey(n), data)
}

func unmarshalNotification(b []byte) (chat.Notification, error) {
	var pbNotification pb.Notification
	if err := proto.Unmarshal(b, &pbNotification); err != nil {
		return chat.Notification{}, err
	}
	return fromPbNotification(&pbNotification)
}

func toPbNotification(n chat.Notification) *pb.Notification {
	return &pb.Notification{
		Id:             n.ID.String(),
		Recipient:      string(n.Recipient),
		Kind:           string(n.Kind),
		ConversationId: string(n.Payload.ConversationID),
		Sender:         string(n.Payload.Sender),
		ContentPreview: n.Payload.ContentPreview,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt.UnixNano(),
	}
}

func fromPbNotification(p *pb.Notification) (chat.Notification, error) {
	id, err := uuid.Parse(p.Id)
	if err != nil {
		return chat.Notification{}, err
	}
	return chat.Notification{
		ID:        id,
		Recipient: chat.ParticipantID(p.Recipient),
		Kind:      chat.NotificationKind(p.Kind),
		Payload: chat.NotificationPayload{
			ConversationID: chat.ConversationID(p.ConversationId),
			Sender:         chat.ParticipantID(p.Sender),
			ContentPreview: p.ContentPreview,
		},
		Read:      p.Read,
		CreatedAt: time.Unix(0, p.CreatedAt).UTC(),
	}, nil
}
