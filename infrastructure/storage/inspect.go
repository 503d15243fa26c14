package storage

import (
	"fmt"
	"strings"
	pb "teammate-chat/proto/storage"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

// Record is the human readable form of a stored value.
type Record struct {
	Kind   string
	At     time.Time
	Detail string
}

// Describe decodes a raw key/value pair by its key prefix. Index keys carry
// no value worth decoding.
func Describe(key string, val []byte) (Record, error) {
	kind, _, _ := strings.Cut(key, ":")
	switch kind {
	case "conv":
		c, err := unmarshalConversation(val)
		if err != nil {
			return Record{Kind: "CONVERSATION"}, err
		}
		members := make([]string, 0, len(c.Members))
		for _, m := range c.Members {
			members = append(members, string(m))
		}
		detail := strings.Join(members, ",")
		if c.Title != nil {
			detail = fmt.Sprintf("%s [%s]", *c.Title, detail)
		}
		return Record{Kind: "CONVERSATION", At: c.CreatedAt, Detail: detail}, nil
	case "msg":
		m, err := unmarshalMessage(val)
		if err != nil {
			return Record{Kind: "MESSAGE"}, err
		}
		return Record{Kind: "MESSAGE", At: m.CreatedAt, Detail: fmt.Sprintf("%s: %s", m.Sender, m.Content)}, nil
	case "notif":
		n, err := unmarshalNotification(val)
		if err != nil {
			return Record{Kind: "NOTIFICATION"}, err
		}
		return Record{Kind: "NOTIFICATION", At: n.CreatedAt,
			Detail: fmt.Sprintf("%s from %s: %s (read=%t)", n.Kind, n.Payload.Sender, n.Payload.ContentPreview, n.Read)}, nil
	case "typing":
		t, err := unmarshalTyping(val)
		if err != nil {
			return Record{Kind: "TYPING"}, err
		}
		return Record{Kind: "TYPING", At: t.ExpiresAt, Detail: string(t.Participant)}, nil
	case "profile":
		p, err := unmarshalProfile(val)
		if err != nil {
			return Record{Kind: "PROFILE"}, err
		}
		return Record{Kind: "PROFILE", Detail: p.Normalize().DisplayName}, nil
	case "last":
		var cursor pb.MessageCursor
		if err := proto.Unmarshal(val, &cursor); err != nil {
			return Record{Kind: "CURSOR"}, err
		}
		return Record{Kind: "CURSOR", At: time.Unix(0, cursor.LastCreatedAt).UTC()}, nil
	case "pair":
		return Record{Kind: "INDEX", Detail: string(val)}, nil
	default:
		return Record{Kind: "INDEX"}, nil
	}
}

// Scan walks every key under prefix in key order.
func Scan(db *badger.DB, prefix string, fn func(key string, record Record, err error)) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			key := string(it.Item().Key())
			err := it.Item().Value(func(val []byte) error {
				record, err := Describe(key, val)
				fn(key, record, err)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
