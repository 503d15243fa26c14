// Package runtime carries events between the services and the connected
// clients. It starts and supervises the background workers without holding
// any business rule.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"teammate-chat/contract"
	"teammate-chat/domain/chat"
	"teammate-chat/infrastructure/storage"
	"teammate-chat/runtime/workers"
	"time"
)

type OrchestratorConfig struct {
	SinkTimeout          time.Duration
	TypingSweepInterval  time.Duration
	MetricInterval       time.Duration
	LowCapacityThreshold int // free room in percent under which a queue is reported
}

type Orchestrator struct {
	mu                     sync.Mutex
	log                    *slog.Logger
	config                 OrchestratorConfig
	supervisor             contract.ISupervisor
	bus                    *EventBus
	notificationRepository storage.INotificationRepository
	notificationQueue      <-chan chat.Notification
	expirer                workers.TypingExpirer
}

func NewOrchestrator(log *slog.Logger, config OrchestratorConfig, supervisor contract.ISupervisor, bus *EventBus,
	notificationRepository storage.INotificationRepository, notificationQueue <-chan chat.Notification,
	expirer workers.TypingExpirer) *Orchestrator {
	return &Orchestrator{
		log:                    log,
		config:                 config,
		supervisor:             supervisor,
		bus:                    bus,
		notificationRepository: notificationRepository,
		notificationQueue:      notificationQueue,
		expirer:                expirer,
	}
}

// Start registers every worker to the supervisor and blocks until they all
// stopped. A single fan-out worker drains the bus so per-topic order holds.
func (o *Orchestrator) Start(ctx context.Context) error {
	fanout := workers.NewEventFanoutWorker(o.log, o.bus.Registry(), o.bus.Events(), o.config.SinkTimeout)
	notifier := workers.NewNotifierWorker(o.log, o.notificationRepository, o.bus, o.notificationQueue)
	sweeper := workers.NewTypingSweeperWorker(o.log, o.expirer, o.config.TypingSweepInterval)
	telemetry := workers.NewTelemetryWorker(o.log, o.bus.Registry(), o.config.MetricInterval)
	capacity := workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
		{Name: "bus", Channel: o.bus.Events()},
		{Name: "notifications", Channel: o.notificationQueue},
	}, o.config.MetricInterval, o.config.LowCapacityThreshold)

	o.mu.Lock()
	o.supervisor.Add(fanout, notifier, sweeper, telemetry, capacity)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised context. Workers return on their next select.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
