package runtime

import (
	"context"
	"teammate-chat/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(_ context.Context, _ event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Topic_One_Subscriber(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.ConversationTopic("conv-1")
	sink := Sink{name: "alice"}

	// Given nobody is subscribed
	req.Nil(registry.GetSinksForTopic(topic))

	// When a sink subscribes a topic
	id := registry.Subscribe(topic, sink)

	// Then
	req.NotEmpty(id)
	req.Len(registry.GetSinksForTopic(topic), 1)
	req.Contains(registry.GetSinksForTopic(topic), sink)
	req.Equal(1, registry.Stats().Subscriptions)
}

func TestRegistry_Subscribe_One_Topic_Multiple_Subscribers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.ConversationTopic("conv-1")

	registry.Subscribe(topic, Sink{name: "alice"})
	registry.Subscribe(topic, Sink{name: "bob"})
	registry.Subscribe(event.ConversationTopic("conv-2"), Sink{name: "clara"})

	req.Len(registry.GetSinksForTopic(topic), 2)
	req.Equal(2, registry.Stats().Topics)
	req.Equal(3, registry.Stats().Subscriptions)
}

func TestRegistry_Unsubscribe_Removes_Empty_Topic(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	topic := event.ConversationTopic("conv-1")
	sink := Sink{name: "alice"}

	id := registry.Subscribe(topic, sink)

	removed, ok := registry.Unsubscribe(id)
	req.True(ok)
	req.Equal(sink, removed)

	req.Nil(registry.GetSinksForTopic(topic))
	req.Equal(0, registry.Stats().Topics)

	// Unsubscribing twice is harmless
	_, ok = registry.Unsubscribe(id)
	req.False(ok)
}

func TestRegistry_Same_Sink_On_Two_Topics(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := Sink{name: "alice"}

	first := registry.Subscribe(event.ConversationTopic("conv-1"), sink)
	registry.Subscribe(event.InboxTopic("alice"), sink)

	registry.Unsubscribe(first)

	// The inbox subscription survives the conversation switch
	req.Nil(registry.GetSinksForTopic(event.ConversationTopic("conv-1")))
	req.Len(registry.GetSinksForTopic(event.InboxTopic("alice")), 1)
}
