package workers

import (
	"context"
	"log/slog"
	"teammate-chat/contract"
	"teammate-chat/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTelemetryWorker_Reads_Registry_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockIRegistry(ctrl)

	registry.EXPECT().Stats().Return(contract.RegistryStats{Topics: 2, Subscriptions: 3}).MinTimes(1)

	worker := NewTelemetryWorker(slog.Default(), registry, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
}
