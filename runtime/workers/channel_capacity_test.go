package workers

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChannelCapacityWorker_Sample(t *testing.T) {
	req := require.New(t)
	events := make(chan int, 4)
	events <- 1
	events <- 2
	events <- 3
	unbuffered := make(chan int)

	worker := NewChannelCapacityWorker(slog.Default(), []NamedChannel{
		{Name: "events", Channel: events},
		{Name: "unbuffered", Channel: unbuffered},
		{Name: "not-a-channel", Channel: 42},
	}, time.Second, 25)

	samples := worker.Sample()

	req.Equal([]ChannelCapacity{{Name: "events", Capacity: 4, Length: 3}}, samples)
	req.Equal(25, samples[0].Free())
}
