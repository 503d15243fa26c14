//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"sync"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	pb "teammate-chat/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type IMessageRepository interface {
	AppendMessage(message chat.Message) (chat.Message, error)
	GetMessages(conversationID chat.ConversationID) ([]chat.Message, error)
}

type MessageRepository struct {
	db    *badger.DB
	log   *slog.Logger
	clock func() time.Time
	locks sync.Map // chat.ConversationID -> *sync.Mutex
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log, clock: time.Now}
}

// WithClock replaces the time source used to stamp messages.
func (m *MessageRepository) WithClock(clock func() time.Time) *MessageRepository {
	m.clock = clock
	return m
}

// messageKey is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent collisions with the UUID suffix.
func messageKey(conversationID chat.ConversationID, at time.Time, id uuid.UUID) []byte {
	return key("msg", string(conversationID), sortableTime(at), id.String())
}

func messagePrefix(conversationID chat.ConversationID) []byte {
	return prefix("msg", string(conversationID))
}

// lastKey holds the cursor of the newest message of a conversation.
func lastKey(conversationID chat.ConversationID) []byte {
	return key("last", string(conversationID))
}

// AppendMessage assigns the id and the server timestamp, then persists the
// message. Timestamps strictly increase per conversation. Appenders of the
// same conversation are serialized by a per-conversation lock; a writer
// going through another repository on the same store still collides on
// last:{conversation}, and Badger's ErrConflict makes it retry on top of
// the winner's timestamp.
func (m *MessageRepository) AppendMessage(message chat.Message) (chat.Message, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	unlock := m.lock(message.ConversationID)
	defer unlock()

	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		stored := message
		err := m.db.Update(func(txn *badger.Txn) error {
			at := m.clock().UTC()

			last, err := getCursor(txn, message.ConversationID)
			switch {
			case err == nil:
				if !at.After(last) {
					at = last.Add(time.Nanosecond)
				}
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}

			stored.CreatedAt = at
			cursor, err := proto.Marshal(&pb.MessageCursor{LastCreatedAt: at.UnixNano()})
			if err != nil {
				return fmt.Errorf("failed to marshal cursor: %w", err)
			}
			if err := txn.Set(lastKey(message.ConversationID), cursor); err != nil {
				return err
			}
			data, err := proto.Marshal(toPbMessage(stored))
			if err != nil {
				return fmt.Errorf("failed to marshal message: %w", err)
			}
			return txn.Set(messageKey(stored.ConversationID, at, stored.ID), data)
		})

		if errors.Is(err, badger.ErrConflict) {
			m.log.Debug("Message append conflicted, retrying",
				"conversation_id", message.ConversationID, "attempt", attempt)
			time.Sleep(time.Duration(attempt+1) * time.Millisecond)
			continue
		}
		if err != nil {
			return chat.Message{}, err
		}
		return stored, nil
	}
	return chat.Message{}, badger.ErrConflict
}

// GetMessages returns the full history of a conversation, oldest first.
// Thanks to the padded timestamp in the key, a forward prefix scan is
// already sorted.
func (m *MessageRepository) GetMessages(conversationID chat.ConversationID) ([]chat.Message, error) {
	var messages []chat.Message
	prefix := messagePrefix(conversationID)

	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				message, err := unmarshalMessage(val)
				if err != nil {
					return fmt.Errorf("failed to unmarshal message: %w", err)
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *MessageRepository) lock(id chat.ConversationID) func() {
	value, _ := m.locks.LoadOrStore(id, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func getCursor(txn *badger.Txn, conversationID chat.ConversationID) (time.Time, error) {
	item, err := txn.Get(lastKey(conversationID))
	if err != nil {
		return time.Time{}, err
	}
	var cursor pb.MessageCursor
	err = item.Value(func(val []byte) error {
		return proto.Unmarshal(val, &cursor)
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}
	return time.Unix(0, cursor.LastCreatedAt).UTC(), nil
}

func unmarshalMessage(b []byte) (chat.Message, error) {
	var pbMessage pb.Message
	if err := proto.Unmarshal(b, &pbMessage); err != nil {
		return chat.Message{}, err
	}
	return fromPbMessage(&pbMessage)
}

func toPbMessage(message chat.Message) *pb.Message {
	return &pb.Message{
		Id:             message.ID.String(),
		ConversationId: string(message.ConversationID),
		Sender:         string(message.Sender),
		Content:        message.Content,
		CreatedAt:      message.CreatedAt.UnixNano(),
	}
}

func fromPbMessage(p *pb.Message) (chat.Message, error) {
	id, err := uuid.Parse(p.Id)
	if err != nil {
		return chat.Message{}, err
	}
	return chat.Message{
		ID:             id,
		ConversationID: chat.ConversationID(p.ConversationId),
		Sender:         chat.ParticipantID(p.Sender),
		Content:        p.Content,
		CreatedAt:      time.Unix(0, p.CreatedAt).UTC(),
	}, nil
}
