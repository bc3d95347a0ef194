package callrecord

import (
	"time"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
)

// Outcome classifies how a call ended.
type Outcome string

const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeEscalated Outcome = "escalated"
	OutcomeAbandoned Outcome = "abandoned"
)

// CallRecord is an immutable analytics row derived from a finished session.
type CallRecord struct {
	ID              string
	AgentID         string
	UserID          string
	DurationSeconds int
	Sentiment       string
	Outcome         Outcome
	Intent          *string
	Language        string
	Transcript      *string
	CustomerPhone   *string
	CreatedAt       time.Time

	// Agent is populated by list queries only.
	Agent *agent.Summary
}

// SentimentCounts tallies the fixed sentiment labels. Other values are not counted.
type SentimentCounts struct {
	Positive int
	Neutral  int
	Negative int
}

// OutcomeCounts tallies call outcomes.
type OutcomeCounts struct {
	Resolved  int
	Escalated int
	Abandoned int
}

// Analytics summarizes all of a caller's call records. ContainmentRate is the
// rounded percentage of calls with a resolved outcome.
type Analytics struct {
	TotalCalls         int
	AvgDurationSeconds int
	ContainmentRate    int
	Sentiments         SentimentCounts
	Outcomes           OutcomeCounts
	Languages          map[string]int
}
