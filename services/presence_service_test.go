package services

import (
	"context"
	"log/slog"
	"teammate-chat/domain/event"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPresenceService_Set_Then_Clear(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	s := f.subscribe(t, event.ConversationTopic("conv-1"))

	// When alice types
	f.presence.SetTyping(ctx, "conv-1", "alice")

	// Then observers see her typing
	set := next(t, s).(event.TypingChanged)
	req.True(set.IsTyping)
	req.Equal("alice", set.Participant.String())
	req.True(set.ExpiresAt.After(time.Now()))
	req.Len(f.presence.Typing(ctx, "conv-1"), 1)

	// When she clears twice
	f.presence.ClearTyping(ctx, "conv-1", "alice")
	f.presence.ClearTyping(ctx, "conv-1", "alice")

	// Then a single clear is published
	cleared := next(t, s).(event.TypingChanged)
	req.False(cleared.IsTyping)
	nothing(t, s)
	req.Empty(f.presence.Typing(ctx, "conv-1"))
}

func TestPresenceService_Clear_Absent_Is_Silent(t *testing.T) {
	f := newFixture(t)
	s := f.subscribe(t, event.ConversationTopic("conv-1"))

	f.presence.ClearTyping(context.Background(), "conv-1", "bob")

	nothing(t, s)
}

func TestPresenceService_Expire(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	s := f.subscribe(t, event.ConversationTopic("conv-1"))

	f.presence.SetTyping(ctx, "conv-1", "alice")
	next(t, s)

	// Before the TTL nothing expires
	req.Equal(0, f.presence.Expire(ctx, time.Now()))

	// Past the TTL the signal is dropped and cleared once
	req.Equal(1, f.presence.Expire(ctx, time.Now().Add(time.Second)))
	cleared := next(t, s).(event.TypingChanged)
	req.False(cleared.IsTyping)
	req.Equal(0, f.presence.Expire(ctx, time.Now().Add(time.Second)))
}

func TestPresenceService_Unrefreshed_Signal_Expires_After_Debounce(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	s := f.subscribe(t, event.ConversationTopic("conv-1"))

	debounce := 1500 * time.Millisecond
	presence := NewPresenceService(slog.Default(), f.typing, f.bus, debounce)
	t0 := time.Now()
	presence.clock = func() time.Time { return t0 }

	// Given alice types once and never refreshes
	presence.SetTyping(ctx, "conv-1", "alice")
	set := next(t, s).(event.TypingChanged)
	req.Equal(t0.Add(debounce), set.ExpiresAt)

	// Then the signal is still live a second later
	req.Equal(0, presence.Expire(ctx, t0.Add(time.Second)))

	// And it is dropped once the debounce window elapses
	req.Equal(1, presence.Expire(ctx, t0.Add(debounce)))
	cleared := next(t, s).(event.TypingChanged)
	req.False(cleared.IsTyping)
	req.Equal("alice", cleared.Participant.String())
}
