package storage

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"teammate-chat/domain/chat"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Append_And_Get_Sorted_Messages(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(newTestDB(t), slog.Default())
	conversationID := chat.NewConversationID()

	for _, author := range []chat.ParticipantID{"Alice", "Bob", "Clara"} {
		_, err := repository.AppendMessage(chat.Message{
			ConversationID: conversationID,
			Sender:         author,
			Content:        "this message will self destruct in 5 seconds",
		})
		req.NoError(err)
	}

	// When fetching messages
	fetched, err := repository.GetMessages(conversationID)
	req.NoError(err)

	// Then they come back in append order with ids and timestamps assigned
	req.Len(fetched, 3)
	req.Equal(chat.ParticipantID("Alice"), fetched[0].Sender)
	req.Equal(chat.ParticipantID("Clara"), fetched[2].Sender)
	for _, m := range fetched {
		req.NotEqual(uuid.Nil, m.ID)
		req.False(m.CreatedAt.IsZero())
	}
}

func Test_Append_Stamps_Strictly_Increasing_With_Frozen_Clock(t *testing.T) {
	req := require.New(t)
	frozen := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repository := NewMessageRepository(newTestDB(t), slog.Default()).
		WithClock(func() time.Time { return frozen })
	conversationID := chat.NewConversationID()

	var stored []chat.Message
	for i := 0; i < 5; i++ {
		m, err := repository.AppendMessage(chat.Message{
			ConversationID: conversationID,
			Sender:         "alice",
			Content:        fmt.Sprintf("message %d", i),
		})
		req.NoError(err)
		stored = append(stored, m)
	}

	for i := 1; i < len(stored); i++ {
		req.True(stored[i-1].CreatedAt.Before(stored[i].CreatedAt))
	}

	fetched, err := repository.GetMessages(conversationID)
	req.NoError(err)
	req.Equal(stored, fetched)
}

func Test_Concurrent_Appends_Keep_A_Total_Order(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(newTestDB(t), slog.Default())
	conversationID := chat.NewConversationID()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repository.AppendMessage(chat.Message{
				ConversationID: conversationID,
				Sender:         chat.ParticipantID(fmt.Sprintf("user_%d", i%3)),
				Content:        fmt.Sprintf("message %d", i),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	fetched, err := repository.GetMessages(conversationID)
	req.NoError(err)
	req.Len(fetched, 20)
	req.True(sort.SliceIsSorted(fetched, func(i, j int) bool { return fetched[i].Before(fetched[j]) }))
	for i := 1; i < len(fetched); i++ {
		req.False(fetched[i].CreatedAt.Equal(fetched[i-1].CreatedAt))
	}
}

func Test_GetMessages_Is_Scoped_To_Conversation(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(newTestDB(t), slog.Default())
	first, second := chat.NewConversationID(), chat.NewConversationID()

	_, err := repository.AppendMessage(chat.Message{ConversationID: first, Sender: "alice", Content: "one"})
	req.NoError(err)
	_, err = repository.AppendMessage(chat.Message{ConversationID: second, Sender: "bob", Content: "two"})
	req.NoError(err)

	fetched, err := repository.GetMessages(first)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("one", fetched[0].Content)

	empty, err := repository.GetMessages(chat.NewConversationID())
	req.NoError(err)
	req.Empty(empty)
}

func Test_Appends_Through_Two_Repositories_Share_The_Cursor(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	first := NewMessageRepository(db, slog.Default())
	second := NewMessageRepository(db, slog.Default())
	conversationID := chat.NewConversationID()

	// Given two writers that do not share a lock
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		for _, repository := range []*MessageRepository{first, second} {
			wg.Add(1)
			go func(repository *MessageRepository, i int) {
				defer wg.Done()
				_, err := repository.AppendMessage(chat.Message{
					ConversationID: conversationID,
					Sender:         "alice",
					Content:        fmt.Sprintf("message %d", i),
				})
				assert.NoError(t, err)
			}(repository, i)
		}
	}
	wg.Wait()

	// Then conflicts are retried and timestamps stay strictly increasing
	fetched, err := first.GetMessages(conversationID)
	req.NoError(err)
	req.Len(fetched, 20)
	for i := 1; i < len(fetched); i++ {
		req.True(fetched[i-1].CreatedAt.Before(fetched[i].CreatedAt))
	}
}
