package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	"teammate-chat/mocks"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConversationService_ResolveOrCreateDirect_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given no prior conversation between alice and bob
	first, err := f.conversations.ResolveOrCreateDirect(ctx, "alice", "bob")
	req.NoError(err)

	// When bob resolves the same pair
	second, err := f.conversations.ResolveOrCreateDirect(ctx, "bob", "alice")
	req.NoError(err)

	// Then exactly one conversation exists with both members
	req.Equal(first.ID, second.ID)
	req.True(first.IsDirect())
	req.ElementsMatch([]chat.ParticipantID{"alice", "bob"}, first.Members)

	list, err := f.conversations.ListConversations(ctx, "alice")
	req.NoError(err)
	req.Len(list, 1)
}

func TestConversationService_ResolveOrCreateDirect_Concurrent(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	const callers = 10
	ids := make([]chat.ConversationID, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := chat.ParticipantID("alice"), chat.ParticipantID("bob")
			if i%2 == 1 {
				a, b = b, a
			}
			conv, err := f.conversations.ResolveOrCreateDirect(context.Background(), a, b)
			assert.NoError(t, err)
			ids[i] = conv.ID
		}(i)
	}
	wg.Wait()

	req.Len(lo.Uniq(ids), 1)
}

func TestConversationService_ResolveOrCreateDirect_Ids_With_Colon(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	// Given a direct conversation between "a:b" and "c"
	first, err := f.conversations.ResolveOrCreateDirect(ctx, "a:b", "c")
	req.NoError(err)

	// When "a" resolves a conversation with "b:c"
	second, err := f.conversations.ResolveOrCreateDirect(ctx, "a", "b:c")
	req.NoError(err)

	// Then the two pairs never share a conversation
	req.NotEqual(first.ID, second.ID)
	req.ElementsMatch([]chat.ParticipantID{"a", "b:c"}, second.Members)

	// And "a" only lists its own conversation
	list, err := f.conversations.ListConversations(ctx, "a")
	req.NoError(err)
	req.Len(list, 1)
	req.Equal(second.ID, list[0].ID)

	member, err := f.conversations.IsMember(ctx, first.ID, "a")
	req.NoError(err)
	req.False(member)
}

func TestConversationService_ResolveOrCreateDirect_Validation(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.conversations.ResolveOrCreateDirect(ctx, "alice", "alice")
	req.ErrorIs(err, errors.ErrValidation)

	_, err = f.conversations.ResolveOrCreateDirect(ctx, "", "bob")
	req.ErrorIs(err, errors.ErrValidation)

	// No conversation was created as a side effect
	list, err := f.conversations.ListConversations(ctx, "alice")
	req.NoError(err)
	req.Empty(list)
}

func TestConversationService_ResolveOrCreateDirect_StoreFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIConversationRepository(ctrl)
	service := NewConversationService(slog.Default(), repo)

	// Given the store is unreachable
	repo.EXPECT().FindDirect(chat.NewPairKey("alice", "bob")).Return(chat.Conversation{}, fmt.Errorf("io timeout"))

	// When resolving
	_, err := service.ResolveOrCreateDirect(context.Background(), "alice", "bob")

	// Then the failure is transient and nothing is created
	req.ErrorIs(err, errors.ErrTransientIO)
}

func TestConversationService_Get_And_IsMember(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.conversations.Get(ctx, "missing")
	req.ErrorIs(err, errors.ErrNotFound)

	title := "team"
	group, err := f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{
		Title:   &title,
		Members: []chat.ParticipantID{"alice", "bob", "clara"},
	})
	req.NoError(err)
	req.True(group.IsGroup)

	ok, err := f.conversations.IsMember(ctx, group.ID, "clara")
	req.NoError(err)
	req.True(ok)

	ok, err = f.conversations.IsMember(ctx, group.ID, "dave")
	req.NoError(err)
	req.False(ok)

	_, err = f.conversations.CreateGroup(ctx, chat.CreateGroupCommand{})
	req.ErrorIs(err, errors.ErrValidation)
}
