package workers

import (
	"context"
	"log/slog"
	"teammate-chat/contract"
	"time"
)

var _ contract.Worker = (*TypingSweeperWorker)(nil)

type TypingExpirer interface {
	Expire(ctx context.Context, now time.Time) int
}

// TypingSweeperWorker clears typing signals whose owner stopped refreshing
// them without sending a clear, e.g. a client that disconnected mid-type.
type TypingSweeperWorker struct {
	log      *slog.Logger
	expirer  TypingExpirer
	interval time.Duration
}

func NewTypingSweeperWorker(log *slog.Logger, expirer TypingExpirer, interval time.Duration) *TypingSweeperWorker {
	return &TypingSweeperWorker{log: log, expirer: expirer, interval: interval}
}

func (w *TypingSweeperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping typing sweeper")
			return nil
		case now := <-ticker.C:
			if n := w.expirer.Expire(ctx, now); n > 0 {
				w.log.Debug("Stale typing signals cleared", "count", n)
			}
		}
	}
}
