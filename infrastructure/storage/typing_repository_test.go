package storage

import (
	"log/slog"
	"teammate-chat/domain/chat"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTypingRepository_PutListDelete(t *testing.T) {
	req := require.New(t)
	repo := NewTypingRepository(newTestDB(t), slog.Default())
	conversationID := chat.NewConversationID()
	now := time.Now()

	req.NoError(repo.PutTyping(chat.TypingSignal{
		ConversationID: conversationID, Participant: "alice", ExpiresAt: now.Add(time.Minute),
	}))

	signals, err := repo.ListTyping(conversationID, now)
	req.NoError(err)
	req.Len(signals, 1)
	req.Equal(chat.ParticipantID("alice"), signals[0].Participant)

	// A signal past its own expiry is filtered even if Badger still holds it
	signals, err = repo.ListTyping(conversationID, now.Add(2*time.Minute))
	req.NoError(err)
	req.Empty(signals)

	existed, err := repo.DeleteTyping(conversationID, "alice")
	req.NoError(err)
	req.True(existed)

	// Deleting twice is a no-op
	existed, err = repo.DeleteTyping(conversationID, "alice")
	req.NoError(err)
	req.False(existed)
}

func TestTypingRepository_PutTyping_IgnoresExpiredSignal(t *testing.T) {
	req := require.New(t)
	repo := NewTypingRepository(newTestDB(t), slog.Default())
	conversationID := chat.NewConversationID()

	req.NoError(repo.PutTyping(chat.TypingSignal{
		ConversationID: conversationID, Participant: "alice", ExpiresAt: time.Now().Add(-time.Second),
	}))

	signals, err := repo.ListTyping(conversationID, time.Now())
	req.NoError(err)
	req.Empty(signals)
}
