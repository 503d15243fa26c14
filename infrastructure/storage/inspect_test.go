package storage

import (
	"log/slog"
	"teammate-chat/domain/chat"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScan_Describes_Every_Record(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	log := slog.Default()

	conv, _, err := NewConversationRepository(db, log).CreateDirect(chat.NewPairKey("alice", "bob"), time.Now())
	req.NoError(err)
	_, err = NewMessageRepository(db, log).AppendMessage(chat.Message{
		ID: uuid.New(), ConversationID: conv.ID, Sender: "alice", Content: "hello",
	})
	req.NoError(err)
	req.NoError(NewProfileRepository(db).PutProfile(RawProfile{ID: "bob", Username: "bobby"}))

	kinds := map[string]string{}
	req.NoError(Scan(db, "", func(key string, record Record, err error) {
		req.NoError(err)
		kinds[key] = record.Kind
		switch record.Kind {
		case "MESSAGE":
			req.Equal("alice: hello", record.Detail)
		case "PROFILE":
			req.Equal("bobby", record.Detail)
		case "CONVERSATION":
			req.Equal("alice,bob", record.Detail)
		}
	}))

	req.Equal("CONVERSATION", kinds["conv:"+string(conv.ID)])
	req.Equal("PROFILE", kinds["profile:bob"])
	req.Contains(kinds, "pair:alice:bob")
	req.Equal("CURSOR", kinds["last:"+string(conv.ID)])
}

func TestDescribe_Corrupted_Value(t *testing.T) {
	_, err := Describe("msg:conv-1:0000000000000000001:x", []byte{0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}
