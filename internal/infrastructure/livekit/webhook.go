package livekit

import (
	"net/http"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/webhook"
)

// RoomEvent is the subset of a LiveKit webhook the broker acts on.
type RoomEvent struct {
	Event               string
	Room                string
	ParticipantIdentity string
}

// WebhookReceiver authenticates and decodes LiveKit webhook deliveries.
type WebhookReceiver struct {
	provider auth.KeyProvider
}

// NewWebhookReceiver creates a receiver that trusts payloads signed with the given key pair.
func NewWebhookReceiver(apiKey, apiSecret string) *WebhookReceiver {
	return &WebhookReceiver{provider: auth.NewSimpleKeyProvider(apiKey, apiSecret)}
}

// Receive verifies the request signature and body checksum, then returns the event.
func (r *WebhookReceiver) Receive(req *http.Request) (*RoomEvent, error) {
	event, err := webhook.ReceiveWebhookEvent(req, r.provider)
	if err != nil {
		return nil, err
	}

	out := &RoomEvent{Event: event.GetEvent()}
	if room := event.GetRoom(); room != nil {
		out.Room = room.GetName()
	}
	if participant := event.GetParticipant(); participant != nil {
		out.ParticipantIdentity = participant.GetIdentity()
	}
	return out, nil
}
