package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"teammate-chat/contract"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
)

var _ contract.IEventBus = (*EventBus)(nil)

// EventBus is the volatile broadcast layer. Published events go through a
// single FIFO queue drained by one EventFanoutWorker, so every subscriber
// of a topic observes events in publish order. There is no replay: a
// subscriber that missed events reconciles from the message store.
type EventBus struct {
	log      *slog.Logger
	registry contract.IRegistry
	events   chan event.DomainEvent
}

func NewEventBus(log *slog.Logger, registry contract.IRegistry, bufferSize int) *EventBus {
	return &EventBus{
		log:      log,
		registry: registry,
		events:   make(chan event.DomainEvent, bufferSize),
	}
}

// Publish enqueues the event. It blocks while the queue is full and gives
// up when ctx is done.
func (b *EventBus) Publish(ctx context.Context, e event.DomainEvent) error {
	select {
	case b.events <- e:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: publish on %s: %v", errors.ErrTransientIO, e.Topic(), ctx.Err())
	}
}

func (b *EventBus) Subscribe(topic event.Topic, sink contract.EventSink) contract.SubscriptionID {
	id := b.registry.Subscribe(topic, sink)
	b.log.Debug("Subscribed", "topic", topic, "subscription_id", id)
	return id
}

// Unsubscribe removes the subscription and closes its sink when it can be
// closed, so an in-flight fan-out can no longer deliver to it.
func (b *EventBus) Unsubscribe(id contract.SubscriptionID) {
	sink, ok := b.registry.Unsubscribe(id)
	if !ok {
		return
	}
	if closable, ok := sink.(contract.ClosableSink); ok {
		closable.Close()
	}
	b.log.Debug("Unsubscribed", "subscription_id", id)
}

// Events is the queue consumed by the fan-out worker.
func (b *EventBus) Events() <-chan event.DomainEvent {
	return b.events
}

func (b *EventBus) Registry() contract.IRegistry {
	return b.registry
}
