package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
)

// Routes holds the v1 route configuration.
type Routes struct {
	handlers *handlers.Provider
	log      zerolog.Logger
}

// NewRoutes creates a new v1 routes instance.
func NewRoutes(handlerProvider *handlers.Provider, log zerolog.Logger) *Routes {
	return &Routes{
		handlers: handlerProvider,
		log:      log,
	}
}

// Register registers all v1 routes on the engine. The token endpoints are
// also served under /functions/v1 so existing edge-function clients keep
// working unchanged. The webhook route authenticates with its own signature.
func (r *Routes) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	for _, prefix := range []string{"/v1", "/functions/v1"} {
		group := engine.Group(prefix)
		if authMiddleware != nil {
			group.Use(authMiddleware)
		}
		RegisterTokenRoutes(group, r.handlers.Session, r.log)
	}

	v1 := engine.Group("/v1")
	webhooks := v1.Group("/livekit")
	RegisterWebhookRoutes(webhooks, r.handlers.Webhook, r.log)

	sessions := v1.Group("/voice-sessions")
	if authMiddleware != nil {
		sessions.Use(authMiddleware)
	}
	RegisterVoiceSessionRoutes(sessions, r.handlers.Session, r.log)

	callLogs := v1.Group("/call-logs")
	if authMiddleware != nil {
		callLogs.Use(authMiddleware)
	}
	RegisterCallLogRoutes(callLogs, r.handlers.CallLog, r.log)
}
