package workers

import (
	"context"
	"log/slog"
	"teammate-chat/contract"
	"teammate-chat/domain/event"
	"time"
)

var _ contract.Worker = (*EventFanoutWorker)(nil)

// EventFanoutWorker drains the bus queue and delivers each event to every
// sink subscribed on its topic.
//
// Sinks are served one after the other for a given event, and events one
// after the other, which is what keeps per-subscriber order equal to publish
// order. A sink that cannot take an event within sinkTimeout is skipped for
// that event; ChannelSink marks itself lost so its owner can resubscribe and
// reconcile from history.
type EventFanoutWorker struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      <-chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanoutWorker(log *slog.Logger, registry contract.IRegistry,
	events <-chan event.DomainEvent, sinkTimeout time.Duration) *EventFanoutWorker {
	return &EventFanoutWorker{
		log:         log,
		registry:    registry,
		events:      events,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout delivers one event to all sinks of its topic.
func (w *EventFanoutWorker) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.registry.GetSinksForTopic(evt.Topic()) {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "topic", evt.Topic(), "error", err)
		}
		cancel()
	}
}
