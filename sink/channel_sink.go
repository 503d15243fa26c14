package sink

import (
	"context"
	"fmt"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
)

var _ contract.ClosableSink = (*ChannelSink)(nil)

// ChannelSink hands fanned-out events to the goroutine serving one client
// (a gRPC stream or a session controller) through a buffered channel.
//
// When the buffer stays full past the fan-out deadline the sink is marked
// lost: the event is dropped, Lost is closed and every later event is
// refused. The owner then resubscribes and reloads from history.
type ChannelSink struct {
	events    chan event.DomainEvent
	lost      chan struct{}
	done      chan struct{}
	lostOnce  sync.Once
	closeOnce sync.Once
}

func NewChannelSink(bufferSize int) *ChannelSink {
	return &ChannelSink{
		events: make(chan event.DomainEvent, bufferSize),
		lost:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Consume is called by the fan-out worker.
func (s *ChannelSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return nil
	case <-s.lost:
		return errors.ErrSubscriberLost
	default:
	}

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		s.markLost()
		return fmt.Errorf("%w: %v", errors.ErrSubscriberLost, ctx.Err())
	}
}

func (s *ChannelSink) Events() <-chan event.DomainEvent {
	return s.events
}

// Lost is closed once the sink dropped an event.
func (s *ChannelSink) Lost() <-chan struct{} {
	return s.lost
}

// Done is closed once the sink was closed.
func (s *ChannelSink) Done() <-chan struct{} {
	return s.done
}

// Close makes the sink discard any further event. The events channel is
// left open so a late fan-out never panics on send.
func (s *ChannelSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *ChannelSink) markLost() {
	s.lostOnce.Do(func() { close(s.lost) })
}
