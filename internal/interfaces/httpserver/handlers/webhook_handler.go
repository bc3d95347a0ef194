package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/metrics"
)

// ErrWebhookDisabled is returned when no LiveKit key pair is configured.
var ErrWebhookDisabled = errors.New("livekit webhooks are not configured")

// ErrInvalidWebhook is returned when a delivery fails signature or checksum verification.
var ErrInvalidWebhook = errors.New("invalid webhook")

// EventReceiver authenticates and decodes webhook deliveries.
type EventReceiver interface {
	Receive(req *http.Request) (*livekit.RoomEvent, error)
}

// WebhookHandler applies LiveKit room events to session state.
type WebhookHandler struct {
	receiver EventReceiver
	service  session.Service
	log      zerolog.Logger
}

// NewWebhookHandler creates a webhook handler. A nil receiver disables it.
func NewWebhookHandler(receiver EventReceiver, service session.Service, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		receiver: receiver,
		service:  service,
		log:      log.With().Str("component", "livekit-webhook").Logger(),
	}
}

// Handle verifies req and promotes the room's session when a participant joins.
func (h *WebhookHandler) Handle(ctx context.Context, req *http.Request) error {
	if h.receiver == nil {
		return ErrWebhookDisabled
	}

	event, err := h.receiver.Receive(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	metrics.WebhookEvents.WithLabelValues(event.Event).Inc()

	if event.Event != "participant_joined" || event.Room == "" {
		return nil
	}

	changed, err := h.service.MarkRoomActive(ctx, event.Room)
	if err != nil {
		return fmt.Errorf("activate room %s: %w", event.Room, err)
	}
	h.log.Debug().
		Str("room", event.Room).
		Str("participant", event.ParticipantIdentity).
		Bool("activated", changed).
		Msg("participant joined")
	return nil
}
