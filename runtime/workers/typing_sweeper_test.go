package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
}

func (c *countingExpirer) Expire(_ context.Context, _ time.Time) int {
	c.calls.Add(1)
	return 1
}

func TestTypingSweeperWorker_Sweeps_Periodically(t *testing.T) {
	req := require.New(t)
	expirer := &countingExpirer{}
	worker := NewTypingSweeperWorker(slog.Default(), expirer, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When the worker runs for a while
	req.NoError(worker.Run(ctx))

	// Then it swept several times
	req.GreaterOrEqual(expirer.calls.Load(), int32(3))
}
