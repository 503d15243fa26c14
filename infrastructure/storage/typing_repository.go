package storage

import (
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	pb "teammate-chat/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type ITypingRepository interface {
	PutTyping(signal chat.TypingSignal) error
	DeleteTyping(conversationID chat.ConversationID, p chat.ParticipantID) (bool, error)
	ListTyping(conversationID chat.ConversationID, now time.Time) ([]chat.TypingSignal, error)
}

// TypingRepository keeps typing signals as Badger entries with a TTL.
// Badger expiry has a one-second granularity, so readers also compare the
// record's own expiry against the current time.
type TypingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTypingRepository(db *badger.DB, log *slog.Logger) *TypingRepository {
	return &TypingRepository{db: db, log: log}
}

func typingKey(conversationID chat.ConversationID, p chat.ParticipantID) []byte {
	return key("typing", string(conversationID), string(p))
}

func typingPrefix(conversationID chat.ConversationID) []byte {
	return prefix("typing", string(conversationID))
}

func (r *TypingRepository) PutTyping(signal chat.TypingSignal) error {
	ttl := time.Until(signal.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	// Round up: Badger truncates expiry to whole seconds.
	ttl += time.Second

	data, err := proto.Marshal(toPbTypingSignal(signal))
	if err != nil {
		return fmt.Errorf("failed to marshal typing signal: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(typingKey(signal.ConversationID, signal.Participant), data).
			WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// DeleteTyping removes the signal and reports whether one was stored.
func (r *TypingRepository) DeleteTyping(conversationID chat.ConversationID, p chat.ParticipantID) (bool, error) {
	existed := false
	err := r.db.Update(func(txn *badger.Txn) error {
		key := typingKey(conversationID, p)
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		existed = true
		return txn.Delete(key)
	})
	return existed, err
}

func (r *TypingRepository) ListTyping(conversationID chat.ConversationID, now time.Time) ([]chat.TypingSignal, error) {
	var signals []chat.TypingSignal
	prefix := typingPrefix(conversationID)

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				signal, err := unmarshalTyping(val)
				if err != nil {
					return err
				}
				if !signal.Expired(now) {
					signals = append(signals, signal)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return signals, err
}

func unmarshalTyping(b []byte) (chat.TypingSignal, error) {
	var pbSignal pb.TypingSignal
	if err := proto.Unmarshal(b, &pbSignal); err != nil {
		return chat.TypingSignal{}, err
	}
	return fromPbTypingSignal(&pbSignal), nil
}

func toPbTypingSignal(signal chat.TypingSignal) *pb.TypingSignal {
	return &pb.TypingSignal{
		ConversationId: string(signal.ConversationID),
		Participant:    string(signal.Participant),
		ExpiresAt:      signal.ExpiresAt.UnixNano(),
	}
}

func fromPbTypingSignal(p *pb.TypingSignal) chat.TypingSignal {
	return chat.TypingSignal{
		ConversationID: chat.ConversationID(p.ConversationId),
		Participant:    chat.ParticipantID(p.Participant),
		ExpiresAt:      time.Unix(0, p.ExpiresAt).UTC(),
	}
}
