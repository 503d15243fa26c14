//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"teammate-chat/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding manual naming.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ClosableSink is a sink the bus closes on unsubscribe. After Close returns,
// the sink must discard any further event.
type ClosableSink interface {
	EventSink
	Close()
}

type SubscriptionID string

type IRegistry interface {
	GetSinksForTopic(topic event.Topic) []EventSink
	Subscribe(topic event.Topic, sink EventSink) SubscriptionID
	Unsubscribe(id SubscriptionID) (EventSink, bool)
	Stats() RegistryStats
}

type RegistryStats struct {
	Topics        int
	Subscriptions int
}

type IEventBus interface {
	Publish(ctx context.Context, e event.DomainEvent) error
	Subscribe(topic event.Topic, sink EventSink) SubscriptionID
	Unsubscribe(id SubscriptionID)
}
