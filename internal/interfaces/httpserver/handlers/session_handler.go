package handlers

import (
	"context"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
)

// SessionHandler handles voice session HTTP requests.
type SessionHandler struct {
	service session.Service
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// IssueToken mints a room token and opens a session for userID.
func (h *SessionHandler) IssueToken(ctx context.Context, userID string, req session.IssueRequest) (*session.IssueResult, error) {
	return h.service.Issue(ctx, userID, req)
}

// EndSession finalizes a session owned by userID.
func (h *SessionHandler) EndSession(ctx context.Context, userID string, req session.FinalizeRequest) (*session.FinalizeResult, error) {
	return h.service.Finalize(ctx, userID, req)
}

// GetSession retrieves a session owned by userID.
func (h *SessionHandler) GetSession(ctx context.Context, userID, id string) (*session.Session, error) {
	return h.service.Get(ctx, userID, id)
}

// ListSessions lists sessions owned by userID, optionally for one agent.
func (h *SessionHandler) ListSessions(ctx context.Context, userID, agentID string) ([]*session.Session, error) {
	return h.service.List(ctx, userID, agentID)
}

// ListLiveCalls lists active sessions owned by userID.
func (h *SessionHandler) ListLiveCalls(ctx context.Context, userID string) ([]*session.LiveCall, error) {
	return h.service.ListLive(ctx, userID)
}

// Stats summarizes today's sessions for userID.
func (h *SessionHandler) Stats(ctx context.Context, userID string) (*session.Stats, error) {
	return h.service.Stats(ctx, userID)
}
