// Package calllogres contains HTTP response DTOs for call log endpoints.
package calllogres

import (
	"time"

	"github.com/samber/lo"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
)

// CallLogAgent is the agent excerpt embedded in call log listings.
type CallLogAgent struct {
	Name string `json:"name"`
}

// CallLogResponse is one call log row.
type CallLogResponse struct {
	ID              string        `json:"id"`
	AgentID         string        `json:"agent_id"`
	DurationSeconds int           `json:"duration_seconds"`
	Sentiment       string        `json:"sentiment"`
	Outcome         string        `json:"outcome"`
	Intent          *string       `json:"intent"`
	Language        string        `json:"language"`
	Transcript      *string       `json:"transcript"`
	CustomerPhone   *string       `json:"customer_phone"`
	CreatedAt       time.Time     `json:"created_at"`
	Agent           *CallLogAgent `json:"agents"`
}

// ListCallLogsResponse wraps a call log listing.
type ListCallLogsResponse struct {
	Object string             `json:"object"`
	Data   []*CallLogResponse `json:"data"`
}

// SentimentCounts tallies call sentiments.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// OutcomeCounts tallies call outcomes.
type OutcomeCounts struct {
	Resolved  int `json:"resolved"`
	Escalated int `json:"escalated"`
	Abandoned int `json:"abandoned"`
}

// AnalyticsResponse aggregates all of the caller's call logs.
type AnalyticsResponse struct {
	TotalCalls      int             `json:"totalCalls"`
	AvgDuration     int             `json:"avgDuration"`
	ContainmentRate int             `json:"containmentRate"`
	SentimentCounts SentimentCounts `json:"sentimentCounts"`
	OutcomeCounts   OutcomeCounts   `json:"outcomeCounts"`
	LanguageCounts  map[string]int  `json:"languageCounts"`
}

// NewListCallLogsResponse creates a ListCallLogsResponse from domain records.
func NewListCallLogsResponse(records []*callrecord.CallRecord) *ListCallLogsResponse {
	return &ListCallLogsResponse{
		Object: "list",
		Data: lo.Map(records, func(r *callrecord.CallRecord, _ int) *CallLogResponse {
			resp := &CallLogResponse{
				ID:              r.ID,
				AgentID:         r.AgentID,
				DurationSeconds: r.DurationSeconds,
				Sentiment:       r.Sentiment,
				Outcome:         string(r.Outcome),
				Intent:          r.Intent,
				Language:        r.Language,
				Transcript:      r.Transcript,
				CustomerPhone:   r.CustomerPhone,
				CreatedAt:       r.CreatedAt,
			}
			if r.Agent != nil {
				resp.Agent = &CallLogAgent{Name: r.Agent.Name}
			}
			return resp
		}),
	}
}

// NewAnalyticsResponse creates an AnalyticsResponse.
func NewAnalyticsResponse(a *callrecord.Analytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		TotalCalls:      a.TotalCalls,
		AvgDuration:     a.AvgDurationSeconds,
		ContainmentRate: a.ContainmentRate,
		SentimentCounts: SentimentCounts{
			Positive: a.Sentiments.Positive,
			Neutral:  a.Sentiments.Neutral,
			Negative: a.Sentiments.Negative,
		},
		OutcomeCounts: OutcomeCounts{
			Resolved:  a.Outcomes.Resolved,
			Escalated: a.Outcomes.Escalated,
			Abandoned: a.Outcomes.Abandoned,
		},
		LanguageCounts: a.Languages,
	}
}
