//go:generate go run go.uber.org/mock/mockgen -source=conversation_repository.go -destination=../../mocks/mock_conversation_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	pb "teammate-chat/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

// maxTxnRetries bounds the retries on badger.ErrConflict. Conflicts only
// happen when two writers race on the same pair or conversation.
const maxTxnRetries = 8

type IConversationRepository interface {
	FindDirect(pair chat.PairKey) (chat.Conversation, error)
	CreateDirect(pair chat.PairKey, at time.Time) (chat.Conversation, bool, error)
	CreateGroup(title *string, members []chat.ParticipantID, at time.Time) (chat.Conversation, error)
	GetConversation(id chat.ConversationID) (chat.Conversation, error)
	ListForParticipant(p chat.ParticipantID) ([]chat.Conversation, error)
}

type ConversationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, log: log}
}

func conversationKey(id chat.ConversationID) []byte {
	return key("conv", string(id))
}

// memberKey indexes a conversation under each of its members. The padded
// creation time keeps the chat list in creation order on a prefix scan.
func memberKey(p chat.ParticipantID, at time.Time, id chat.ConversationID) []byte {
	return key("member", string(p), sortableTime(at), string(id))
}

func memberPrefix(p chat.ParticipantID) []byte {
	return prefix("member", string(p))
}

// pairKey is the store-level uniqueness constraint for direct conversations.
func pairKey(pair chat.PairKey) []byte {
	return key("pair", string(pair.Low), string(pair.High))
}

// FindDirect returns the direct conversation of the pair, or ErrNotFound.
func (r *ConversationRepository) FindDirect(pair chat.PairKey) (chat.Conversation, error) {
	var conv chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		conv, err = getDirect(txn, pair)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Conversation{}, fmt.Errorf("%w: no direct conversation between %s and %s",
			errors.ErrNotFound, pair.Low, pair.High)
	}
	return conv, err
}

// CreateDirect atomically inserts the direct conversation of the pair or
// fetches the existing one. The boolean reports whether it was created.
// Two concurrent callers both read the absent pair key; Badger rejects the
// second commit with ErrConflict and the retry finds the winner's row.
func (r *ConversationRepository) CreateDirect(pair chat.PairKey, at time.Time) (chat.Conversation, bool, error) {
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		var conv chat.Conversation
		created := false

		err := r.db.Update(func(txn *badger.Txn) error {
			existing, err := getDirect(txn, pair)
			if err == nil {
				conv = existing
				return nil
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			conv = chat.Conversation{
				ID:        chat.NewConversationID(),
				IsGroup:   false,
				Members:   pair.Members(),
				CreatedAt: at.UTC(),
			}
			if err := putConversation(txn, conv); err != nil {
				return err
			}
			created = true
			return txn.Set(pairKey(pair), []byte(conv.ID))
		})

		if errors.Is(err, badger.ErrConflict) {
			r.log.Debug("Direct conversation creation conflicted, retrying",
				"low", pair.Low, "high", pair.High, "attempt", attempt)
			continue
		}
		if err != nil {
			return chat.Conversation{}, false, err
		}
		return conv, created, nil
	}
	return chat.Conversation{}, false, badger.ErrConflict
}

func (r *ConversationRepository) CreateGroup(title *string, members []chat.ParticipantID, at time.Time) (chat.Conversation, error) {
	conv := chat.Conversation{
		ID:        chat.NewConversationID(),
		IsGroup:   true,
		Title:     title,
		Members:   lo.Uniq(members),
		CreatedAt: at.UTC(),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return putConversation(txn, conv)
	})
	return conv, err
}

func (r *ConversationRepository) GetConversation(id chat.ConversationID) (chat.Conversation, error) {
	var conv chat.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		conv, err = getConversation(txn, id)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chat.Conversation{}, fmt.Errorf("%w: conversation %s", errors.ErrNotFound, id)
	}
	return conv, err
}

// ListForParticipant returns every conversation p belongs to, oldest first.
func (r *ConversationRepository) ListForParticipant(p chat.ParticipantID) ([]chat.Conversation, error) {
	var conversations []chat.Conversation
	prefix := memberPrefix(p)

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id := chat.ConversationID(lastSegment(it.Item().Key()))
			conv, err := getConversation(txn, id)
			if errors.Is(err, badger.ErrKeyNotFound) {
				r.log.Warn("Dangling membership index", "participant", p, "conversation_id", id)
				continue
			}
			if err != nil {
				return err
			}
			conversations = append(conversations, conv)
		}
		return nil
	})
	return conversations, err
}

func getDirect(txn *badger.Txn, pair chat.PairKey) (chat.Conversation, error) {
	item, err := txn.Get(pairKey(pair))
	if err != nil {
		return chat.Conversation{}, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return chat.Conversation{}, err
	}
	return getConversation(txn, chat.ConversationID(value))
}

func getConversation(txn *badger.Txn, id chat.ConversationID) (chat.Conversation, error) {
	item, err := txn.Get(conversationKey(id))
	if err != nil {
		return chat.Conversation{}, err
	}
	var conv chat.Conversation
	err = item.Value(func(val []byte) error {
		conv, err = unmarshalConversation(val)
		return err
	})
	return conv, err
}

func putConversation(txn *badger.Txn, conv chat.Conversation) error {
	data, err := proto.Marshal(toPbConversation(conv))
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}
	if err := txn.Set(conversationKey(conv.ID), data); err != nil {
		return err
	}
	for _, m := range conv.Members {
		if err := txn.Set(memberKey(m, conv.CreatedAt, conv.ID), nil); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalConversation(b []byte) (chat.Conversation, error) {
	var pbConversation pb.Conversation
	if err := proto.Unmarshal(b, &pbConversation); err != nil {
		return chat.Conversation{}, err
	}
	return fromPbConversation(&pbConversation), nil
}

func toPbConversation(c chat.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:       string(c.ID),
		IsGroup:  c.IsGroup,
		Title:    lo.FromPtr(c.Title),
		HasTitle: c.Title != nil,
		Members: lo.Map(c.Members, func(m chat.ParticipantID, _ int) string {
			return string(m)
		}),
		CreatedAt: c.CreatedAt.UnixNano(),
	}
}

func fromPbConversation(p *pb.Conversation) chat.Conversation {
	c := chat.Conversation{
		ID:      chat.ConversationID(p.Id),
		IsGroup: p.IsGroup,
		Members: lo.Map(p.Members, func(m string, _ int) chat.ParticipantID {
			return chat.ParticipantID(m)
		}),
		CreatedAt: time.Unix(0, p.CreatedAt).UTC(),
	}
	if p.HasTitle {
		c.Title = lo.ToPtr(p.Title)
	}
	return c
}
