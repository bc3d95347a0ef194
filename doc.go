// Package voicebroker is a real-time session broker for voice agents.
//
// The service:
//   - Signs LiveKit room access tokens for a user's own agents
//   - Records each voice session and its lifecycle (connecting, active, ended)
//   - Finalizes sessions with duration, transcript and sentiment, and writes a call log
//   - Serves the dashboard's session list, live calls and daily statistics
//   - Promotes sessions to active from LiveKit webhooks or room polling
//
// Entry point: cmd/server.
package voicebroker
