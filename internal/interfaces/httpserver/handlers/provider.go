package handlers

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Session *SessionHandler
	CallLog *CallLogHandler
	Webhook *WebhookHandler
}

// NewProvider creates a new handler provider.
func NewProvider(sessionHandler *SessionHandler, callLogHandler *CallLogHandler, webhookHandler *WebhookHandler) *Provider {
	return &Provider{
		Session: sessionHandler,
		CallLog: callLogHandler,
		Webhook: webhookHandler,
	}
}

// ProvideWebhookHandler wires the webhook receiver when a key pair is configured.
func ProvideWebhookHandler(cfg *config.Config, service session.Service, log zerolog.Logger) *WebhookHandler {
	var receiver EventReceiver
	if cfg.LiveKitAPIKey != "" && cfg.LiveKitAPISecret != "" {
		receiver = livekit.NewWebhookReceiver(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	}
	return NewWebhookHandler(receiver, service, log)
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewSessionHandler,
	NewCallLogHandler,
	ProvideWebhookHandler,
	NewProvider,
)
