package runtime

import (
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/event"

	"github.com/google/uuid"
)

type Set map[contract.SubscriptionID]struct{}

type subscription struct {
	topic event.Topic
	sink  contract.EventSink
}

type Registry struct {
	mu            sync.RWMutex
	subscriptions map[contract.SubscriptionID]subscription // map subscription -> topic and sink
	topics        map[event.Topic]Set                      // map topic -> subscriptions
}

func NewRegistry() *Registry {
	return &Registry{
		subscriptions: make(map[contract.SubscriptionID]subscription),
		topics:        make(map[event.Topic]Set),
	}
}

// GetSinksForTopic retrieves every sink subscribed to a topic.
// Returns nil if nobody listens on it.
func (r *Registry) GetSinksForTopic(topic event.Topic) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, ok := r.topics[topic]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for id := range ids {
		if sub, exists := r.subscriptions[id]; exists {
			sinks = append(sinks, sub.sink)
		}
	}
	return sinks
}

// Subscribe registers a sink on a topic and returns the handle needed to
// unsubscribe. A client holding several subscriptions gets one handle each,
// so switching conversations never disturbs its other subscriptions.
func (r *Registry) Subscribe(topic event.Topic, sink contract.EventSink) contract.SubscriptionID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := contract.SubscriptionID(uuid.NewString())
	r.subscriptions[id] = subscription{topic: topic, sink: sink}

	if _, ok := r.topics[topic]; !ok {
		r.topics[topic] = make(Set)
	}
	r.topics[topic][id] = struct{}{}
	return id
}

// Unsubscribe removes the subscription and returns its sink. No empty sets
// are left in the topic map.
func (r *Registry) Unsubscribe(id contract.SubscriptionID) (contract.EventSink, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscriptions[id]
	if !ok {
		return nil, false
	}
	delete(r.subscriptions, id)

	if ids, ok := r.topics[sub.topic]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(r.topics, sub.topic)
		}
	}
	return sub.sink, true
}

func (r *Registry) Stats() contract.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return contract.RegistryStats{Topics: len(r.topics), Subscriptions: len(r.subscriptions)}
}
