package storage

import (
	"log/slog"
	"sync"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepository_CreateDirect_InsertOrFetch(t *testing.T) {
	req := require.New(t)
	repo := NewConversationRepository(newTestDB(t), slog.Default())
	pair := chat.NewPairKey("alice", "bob")

	// Given no conversation exists
	_, err := repo.FindDirect(pair)
	req.ErrorIs(err, errors.ErrNotFound)

	// When the pair conversation is created twice
	first, created, err := repo.CreateDirect(pair, time.Now())
	req.NoError(err)
	req.True(created)

	second, created, err := repo.CreateDirect(chat.NewPairKey("bob", "alice"), time.Now())
	req.NoError(err)
	req.False(created)

	// Then the same conversation is returned
	req.Equal(first.ID, second.ID)
	req.False(first.IsGroup)
	req.ElementsMatch([]chat.ParticipantID{"alice", "bob"}, first.Members)

	found, err := repo.FindDirect(pair)
	req.NoError(err)
	req.Equal(first, found)
}

func TestConversationRepository_CreateDirect_Concurrent(t *testing.T) {
	req := require.New(t)
	repo := NewConversationRepository(newTestDB(t), slog.Default())

	const callers = 16
	ids := make([]chat.ConversationID, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := chat.ParticipantID("alice"), chat.ParticipantID("bob")
			if i%2 == 0 {
				a, b = b, a
			}
			conv, _, err := repo.CreateDirect(chat.NewPairKey(a, b), time.Now())
			assert.NoError(t, err)
			ids[i] = conv.ID
		}(i)
	}
	wg.Wait()

	// Only one direct conversation exists for the pair
	req.Len(lo.Uniq(ids), 1)
	list, err := repo.ListForParticipant("alice")
	req.NoError(err)
	req.Len(list, 1)
}

func TestConversationRepository_ListForParticipant(t *testing.T) {
	req := require.New(t)
	repo := NewConversationRepository(newTestDB(t), slog.Default())
	now := time.Now()

	withBob, _, err := repo.CreateDirect(chat.NewPairKey("alice", "bob"), now)
	req.NoError(err)
	withClara, _, err := repo.CreateDirect(chat.NewPairKey("clara", "alice"), now.Add(time.Second))
	req.NoError(err)
	group, err := repo.CreateGroup(lo.ToPtr("hackathon"), []chat.ParticipantID{"alice", "dan", "dan"}, now.Add(2*time.Second))
	req.NoError(err)

	// alice sees all three, oldest first
	list, err := repo.ListForParticipant("alice")
	req.NoError(err)
	req.Equal([]chat.ConversationID{withBob.ID, withClara.ID, group.ID},
		lo.Map(list, func(c chat.Conversation, _ int) chat.ConversationID { return c.ID }))

	// Group members are deduplicated and the title survives the round trip
	req.Len(list[2].Members, 2)
	req.Equal("hackathon", *list[2].Title)
	req.True(list[2].IsGroup)

	// A participant prefix of another id doesn't leak
	list, err = repo.ListForParticipant("ali")
	req.NoError(err)
	req.Empty(list)
}

func TestConversationRepository_Ids_With_Separator_Do_Not_Collide(t *testing.T) {
	req := require.New(t)
	repo := NewConversationRepository(newTestDB(t), slog.Default())
	now := time.Now()

	// Given two pairs whose ids concatenate to the same string
	first, created, err := repo.CreateDirect(chat.NewPairKey("a:b", "c"), now)
	req.NoError(err)
	req.True(created)

	// When the second pair is resolved
	second, created, err := repo.CreateDirect(chat.NewPairKey("a", "b:c"), now.Add(time.Second))
	req.NoError(err)

	// Then it gets its own conversation
	req.True(created)
	req.NotEqual(first.ID, second.ID)
	req.ElementsMatch([]chat.ParticipantID{"a", "b:c"}, second.Members)

	// And membership scans stay scoped to the exact participant
	list, err := repo.ListForParticipant("a")
	req.NoError(err)
	req.Equal([]chat.ConversationID{second.ID},
		lo.Map(list, func(c chat.Conversation, _ int) chat.ConversationID { return c.ID }))

	list, err = repo.ListForParticipant("a:b")
	req.NoError(err)
	req.Equal([]chat.ConversationID{first.ID},
		lo.Map(list, func(c chat.Conversation, _ int) chat.ConversationID { return c.ID }))
}

func TestConversationRepository_GetConversation_NotFound(t *testing.T) {
	repo := NewConversationRepository(newTestDB(t), slog.Default())
	_, err := repo.GetConversation("missing")
	require.ErrorIs(t, err, errors.ErrNotFound)
}
