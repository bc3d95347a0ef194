package session

import (
	"time"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
)

// Status is the lifecycle state of a voice session.
type Status string

const (
	// StatusConnecting is set when the room token is issued.
	StatusConnecting Status = "connecting"
	// StatusActive is set once a participant is observed in the room.
	StatusActive Status = "active"
	// StatusEnded is terminal.
	StatusEnded Status = "ended"
)

const (
	DefaultSentiment       = "neutral"
	DefaultLanguage        = "English"
	DefaultParticipantName = "User"
)

// Session is the bookkeeping record of one call attempt.
type Session struct {
	ID              string
	UserID          string
	AgentID         string
	RoomName        string
	Status          Status
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int
	Transcript      *string
	Sentiment       *string
	Intent          *string
	Language        *string
	CustomerPhone   *string
	CreatedAt       time.Time

	// Agent is populated by list queries only.
	Agent *agent.Summary
}

// Terminal reports whether the session can no longer change state.
func (s *Session) Terminal() bool {
	return s.Status == StatusEnded
}

// Completion holds the fields written when a session is finalized.
type Completion struct {
	EndedAt         time.Time
	DurationSeconds int
	Transcript      *string
	Sentiment       string
	Intent          *string
	Language        string
}

// IssueRequest is the input to token issuance.
type IssueRequest struct {
	AgentID         string
	RoomName        string
	ParticipantName string
}

// IssueResult is returned to the caller after a token is minted.
type IssueResult struct {
	Token     string
	URL       string
	RoomName  string
	SessionID string // empty when the session row could not be written
	Agent     agent.Summary
}

// FinalizeRequest is the input to session finalization.
type FinalizeRequest struct {
	SessionID  string
	Transcript string
	Sentiment  string
	Intent     string
	Language   string
}

// FinalizeResult carries the authoritative duration of a finalized session.
type FinalizeResult struct {
	DurationSeconds int
}

// Filter narrows session listings.
type Filter struct {
	UserID       string
	AgentID      string
	Status       Status
	StartedSince *time.Time
}

// LiveCall is an active session with its running duration.
type LiveCall struct {
	Session         *Session
	DurationSeconds int
}

// Stats summarizes a caller's sessions since local midnight.
type Stats struct {
	TotalCallsToday    int
	AvgDurationSeconds int
	SatisfactionRate   int
	ActiveCalls        int
}
