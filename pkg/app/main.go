package app

import (
	"github.com/gorilla/sessions"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	"github.com/wheelhouse/wheelhouse/pkg/cache"
	"github.com/wheelhouse/wheelhouse/pkg/database"
	"github.com/wheelhouse/wheelhouse/pkg/events"
	"github.com/wheelhouse/wheelhouse/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "renaming wheel set", "set_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db               *database.Database
	Logger           logger.Logger
	EventBus         *events.EventBus
	Redis            *cache.RedisClient
	Tokens           *auth.TokenManager
	SessionStore     sessions.Store // Redis-backed session store; nil in worker process
	StrictVersioning bool           // reject stale set versions with Conflict instead of reconciling
}
