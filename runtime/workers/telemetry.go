package workers

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"teammate-chat/contract"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*TelemetryWorker)(nil)

// TelemetryWorker periodically logs the bus subscription counts and the
// resource usage of the process.
type TelemetryWorker struct {
	log            *slog.Logger
	registry       contract.IRegistry
	metricInterval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, registry contract.IRegistry, metricInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, registry: registry, metricInterval: metricInterval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.registry.Stats()
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Telemetry",
				"topics", stats.Topics,
				"subscriptions", stats.Subscriptions,
				"goroutines", goruntime.NumGoroutine(),
				"rss_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
