package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/wheelhouse/wheelhouse/pkg/app"
	"github.com/wheelhouse/wheelhouse/pkg/cache"
	"github.com/wheelhouse/wheelhouse/pkg/config"
	"github.com/wheelhouse/wheelhouse/pkg/database"
	"github.com/wheelhouse/wheelhouse/pkg/events"
	"github.com/wheelhouse/wheelhouse/pkg/logger"
	"github.com/wheelhouse/wheelhouse/pkg/telemetry"
	wheelEvents "github.com/wheelhouse/wheelhouse/services/wheel/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		wheelEvents.TopicWheelSetCreated: handleSetCreated(a),
		wheelEvents.TopicWheelSetDeleted: handleSetDeleted(a),
		wheelEvents.TopicImportCompleted: handleImportCompleted(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleSetCreated returns a handler for wheel.set.created events.
// Handlers must be idempotent: the EventBus retries up to 3× on failure.
func handleSetCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt wheelEvents.WheelSetCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "wheel set created",
			"set_id", evt.SetID, "user_id", evt.UserID, "name", evt.Name)
		return nil
	}
}

// handleSetDeleted returns a handler for wheel.set.deleted events.
// Drops the Redis read model so a stale aggregate can never be served after
// the row is gone, even if the API-side invalidation was lost.
func handleSetDeleted(a *app.Application) func(context.Context, *message.Message) error {
	setCache := cache.NewWheelSetCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt wheelEvents.WheelSetDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := setCache.Delete(ctx, evt.UserID, evt.SetID); err != nil {
			// Invalidation is best-effort; the entry also expires by TTL.
			a.Logger.WarnContext(ctx, "cache invalidation failed for wheel.set.deleted",
				"set_id", evt.SetID, "error", err)
		}

		a.Logger.InfoContext(ctx, "wheel set deleted",
			"set_id", evt.SetID, "user_id", evt.UserID, "items_removed", evt.ItemCount)
		return nil
	}
}

// handleImportCompleted returns a handler for wheel.import.completed events.
func handleImportCompleted(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt wheelEvents.ImportCompletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "legacy snapshot imported",
			"user_id", evt.UserID, "imported", evt.Imported)
		return nil
	}
}
