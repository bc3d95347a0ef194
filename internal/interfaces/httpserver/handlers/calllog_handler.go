package handlers

import (
	"context"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
)

// CallLogHandler handles call log HTTP requests.
type CallLogHandler struct {
	service callrecord.Service
}

// NewCallLogHandler creates a new call log handler.
func NewCallLogHandler(service callrecord.Service) *CallLogHandler {
	return &CallLogHandler{service: service}
}

// ListCallLogs lists userID's call logs, optionally for one agent.
func (h *CallLogHandler) ListCallLogs(ctx context.Context, userID, agentID string) ([]*callrecord.CallRecord, error) {
	return h.service.List(ctx, userID, agentID)
}

// Analytics aggregates all of userID's call logs.
func (h *CallLogHandler) Analytics(ctx context.Context, userID string) (*callrecord.Analytics, error) {
	return h.service.Analytics(ctx, userID)
}
