package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

type ChannelCapacity struct {
	Name     string
	Capacity int
	Length   int
}

// Free is the remaining room in percent.
func (c ChannelCapacity) Free() int {
	if c.Capacity == 0 {
		return 0
	}
	return (c.Capacity - c.Length) * 100 / c.Capacity
}

// ChannelCapacityWorker periodically samples the length and capacity of the
// internal queues. Reading len and cap is non-blocking, so sampling never
// interferes with producers or consumers.
type ChannelCapacityWorker struct {
	log                  *slog.Logger
	channels             []NamedChannel
	metricInterval       time.Duration
	lowCapacityThreshold int
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	metricInterval time.Duration, lowCapacityThreshold int) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:                  log,
		channels:             channels,
		metricInterval:       metricInterval,
		lowCapacityThreshold: lowCapacityThreshold,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping channel sampling")
			return nil
		case <-ticker.C:
			for _, c := range w.Sample() {
				if c.Free() <= w.lowCapacityThreshold {
					w.log.Warn("Channel running low on capacity",
						"name", c.Name, "length", c.Length, "capacity", c.Capacity)
					continue
				}
				w.log.Debug("Channel capacity", "name", c.Name, "length", c.Length, "capacity", c.Capacity)
			}
		}
	}
}

// Sample skips anything that is not a buffered channel.
func (w *ChannelCapacityWorker) Sample() []ChannelCapacity {
	var res []ChannelCapacity
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		if v.Cap() == 0 {
			continue
		}
		res = append(res, ChannelCapacity{Name: nc.Name, Capacity: v.Cap(), Length: v.Len()})
	}
	return res
}
