package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"teammate-chat/auth"
	"teammate-chat/infrastructure/grpc/server"
	"teammate-chat/infrastructure/storage"
	"teammate-chat/internal"
	"teammate-chat/runtime"
	"teammate-chat/runtime/workers"
	"teammate-chat/services"
	"teammate-chat/session"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const gracefulStopTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Master terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every defer (database close first) run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()
	debug := logger.Enabled(ctx, slog.LevelDebug)

	// 2. Database (BadgerDB)
	db, err := storage.Open(storage.OpenOptions{Path: config.BadgerFilepath, Debug: debug})
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if debug {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, RecordMapper)
	}

	// 3. Repositories, bus & services
	conversationRepository := storage.NewConversationRepository(db, logger)
	messageRepository := storage.NewMessageRepository(db, logger)
	notificationRepository := storage.NewNotificationRepository(db, logger)
	typingRepository := storage.NewTypingRepository(db, logger)
	profileRepository := storage.NewProfileRepository(db)

	registry := runtime.NewRegistry()
	bus := runtime.NewEventBus(logger, registry, config.BufferSize)

	notificationService := services.NewNotificationService(logger, notificationRepository,
		config.NotificationQueueSize, config.NotificationPreviewLength)
	conversationService := services.NewConversationService(logger, conversationRepository)
	messageService := services.NewMessageService(logger, conversationRepository, messageRepository,
		bus, notificationService, config.MaxContentLength)
	presenceService := services.NewPresenceService(logger, typingRepository, bus, config.TypingDebounce)

	// 4. Supervision & Orchestration
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, runtime.OrchestratorConfig{
		SinkTimeout:          config.SinkTimeout,
		TypingSweepInterval:  config.TypingSweepInterval,
		MetricInterval:       config.MetricInterval,
		LowCapacityThreshold: config.LowCapacityThreshold,
	}, supervisor, bus, notificationRepository, notificationService.Queue(), presenceService)

	// 5. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	monitoring := server.NewMonitoringServer(logger, registry)
	go func() {
		if err := monitoring.Start(ctx, config.MonitoringPort); err != nil {
			errChan <- fmt.Errorf("monitoring server error: %w", err)
		}
	}()

	// 6. gRPC Server Setup
	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.Address(), err)
	}

	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	interceptor := auth.NewInterceptor(tokens, server.PublicMethods...)
	sessions := server.NewSessionHost(logger, interceptor, session.Config{
		TypingDebounce:        config.TypingDebounce,
		TypingRefreshInterval: config.TypingRefreshInterval,
		TypingSweepInterval:   config.TypingSweepInterval,
		SinkBufferSize:        config.ConnectionBufferSize,
	}, session.Dependencies{
		Conversations: conversationService,
		Messages:      messageService,
		Presence:      presenceService,
		Bus:           bus,
		Profiles:      profileRepository,
	})
	chatServer := server.NewChatServer(logger, conversationService, messageService, notificationService,
		bus, sessions, config.ConnectionBufferSize)
	s, healthServer := server.NewGrpcServer(logger, interceptor, chatServer)

	go func() {
		logger.Info("Starting gRPC server", "address", config.Address(), "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code, runErr := exitOK, error(nil)
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	gracefulStop(s, gracefulStopTimeout)
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return code, runErr
}

// gracefulStop lets unary calls finish. Long-lived streams do not end on
// their own, so the server is stopped hard after timeout.
func gracefulStop(s *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
	}
}

// RecordMapper renders chat records in the Badger inspector.
func RecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	record, err := storage.Describe(key, val)
	row.Type = record.Kind
	if err != nil {
		row.Detail = "Error: decode failed"
		return row
	}
	row.Detail = record.Detail
	return row
}
