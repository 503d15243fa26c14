package sink

import (
	"context"
	"teammate-chat/domain/chat"
	"teammate-chat/domain/event"
	"teammate-chat/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func appended(content string) event.MessageAppended {
	return event.MessageAppended{Message: chat.Message{ConversationID: "conv-1", Content: content}}
}

func TestChannelSink_Delivers_In_Order(t *testing.T) {
	req := require.New(t)
	s := NewChannelSink(4)

	req.NoError(s.Consume(context.Background(), appended("a")))
	req.NoError(s.Consume(context.Background(), appended("b")))

	req.Equal(appended("a"), <-s.Events())
	req.Equal(appended("b"), <-s.Events())
}

func TestChannelSink_Full_Buffer_Marks_Lost(t *testing.T) {
	req := require.New(t)
	s := NewChannelSink(1)

	// Given a full buffer
	req.NoError(s.Consume(context.Background(), appended("a")))

	// When the next event cannot be delivered in time
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := s.Consume(ctx, appended("b"))

	// Then the sink reports itself lost
	req.ErrorIs(err, errors.ErrSubscriberLost)
	select {
	case <-s.Lost():
	default:
		req.Fail("sink should be marked lost")
	}

	// And it refuses everything afterwards, even with room in the buffer
	<-s.Events()
	req.ErrorIs(s.Consume(context.Background(), appended("c")), errors.ErrSubscriberLost)
}

func TestChannelSink_Closed_Discards(t *testing.T) {
	req := require.New(t)
	s := NewChannelSink(1)

	s.Close()
	s.Close()

	req.NoError(s.Consume(context.Background(), appended("a")))
	req.Empty(s.Events())
}
