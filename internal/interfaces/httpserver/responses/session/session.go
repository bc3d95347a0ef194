// Package sessionres contains HTTP response DTOs for voice session endpoints.
package sessionres

import (
	"time"

	"github.com/samber/lo"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	domainsession "github.com/sango-07/xebia-voice-stuido/internal/domain/session"
)

const (
	unknownPhone  = "Unknown"
	unknownAgent  = "Unknown Agent"
	defaultIntent = "General inquiry"
)

// AgentSummary is the public view of an agent. Nullable columns stay null.
type AgentSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PersonaName  *string `json:"persona_name"`
	SystemPrompt *string `json:"system_prompt"`
	VoiceGender  *string `json:"voice_gender"`
	VoiceAccent  *string `json:"voice_accent"`
}

// TokenResponse is returned by POST /livekit-token.
type TokenResponse struct {
	Token     string       `json:"token"`
	URL       string       `json:"url"`
	RoomName  string       `json:"roomName"`
	SessionID string       `json:"sessionId,omitempty"`
	Agent     AgentSummary `json:"agent"`
}

// EndSessionResponse is returned by POST /end-voice-session.
type EndSessionResponse struct {
	Success         bool `json:"success"`
	DurationSeconds int  `json:"durationSeconds"`
}

// SessionAgent is the agent excerpt embedded in session listings.
type SessionAgent struct {
	Name        string  `json:"name"`
	PersonaName *string `json:"persona_name"`
}

// SessionResponse is a voice session row as shown on the dashboard.
type SessionResponse struct {
	ID              string        `json:"id"`
	AgentID         string        `json:"agent_id"`
	RoomName        string        `json:"room_name"`
	Status          string        `json:"status"`
	StartedAt       time.Time     `json:"started_at"`
	EndedAt         *time.Time    `json:"ended_at"`
	DurationSeconds *int          `json:"duration_seconds"`
	Transcript      *string       `json:"transcript"`
	Sentiment       *string       `json:"sentiment"`
	Intent          *string       `json:"intent"`
	Language        *string       `json:"language"`
	CustomerPhone   *string       `json:"customer_phone"`
	CreatedAt       time.Time     `json:"created_at"`
	Agent           *SessionAgent `json:"agent,omitempty"`
}

// ListSessionsResponse wraps a session listing.
type ListSessionsResponse struct {
	Object string             `json:"object"`
	Data   []*SessionResponse `json:"data"`
}

// LiveCallResponse is an active call with display defaults applied.
type LiveCallResponse struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Duration  int    `json:"duration"`
	AgentName string `json:"agentName"`
	Intent    string `json:"intent"`
	Sentiment string `json:"sentiment"`
	Language  string `json:"language"`
	RoomName  string `json:"roomName"`
}

// ListLiveCallsResponse wraps the active calls.
type ListLiveCallsResponse struct {
	Object string              `json:"object"`
	Data   []*LiveCallResponse `json:"data"`
}

// StatsResponse summarizes today's calls.
type StatsResponse struct {
	TotalCallsToday    int `json:"totalCallsToday"`
	AvgDurationSeconds int `json:"avgDurationSeconds"`
	SatisfactionRate   int `json:"satisfactionRate"`
	ActiveCalls        int `json:"activeCalls"`
}

// NewTokenResponse creates a TokenResponse from an issuance result.
func NewTokenResponse(res *domainsession.IssueResult) *TokenResponse {
	return &TokenResponse{
		Token:     res.Token,
		URL:       res.URL,
		RoomName:  res.RoomName,
		SessionID: res.SessionID,
		Agent:     newAgentSummary(res.Agent),
	}
}

// NewEndSessionResponse creates an EndSessionResponse.
func NewEndSessionResponse(res *domainsession.FinalizeResult) *EndSessionResponse {
	return &EndSessionResponse{Success: true, DurationSeconds: res.DurationSeconds}
}

// NewSessionResponse creates a SessionResponse from a domain Session.
func NewSessionResponse(sess *domainsession.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:              sess.ID,
		AgentID:         sess.AgentID,
		RoomName:        sess.RoomName,
		Status:          string(sess.Status),
		StartedAt:       sess.StartedAt,
		EndedAt:         sess.EndedAt,
		DurationSeconds: sess.DurationSeconds,
		Transcript:      sess.Transcript,
		Sentiment:       sess.Sentiment,
		Intent:          sess.Intent,
		Language:        sess.Language,
		CustomerPhone:   sess.CustomerPhone,
		CreatedAt:       sess.CreatedAt,
	}
	if sess.Agent != nil {
		resp.Agent = &SessionAgent{Name: sess.Agent.Name, PersonaName: sess.Agent.PersonaName}
	}
	return resp
}

// NewListSessionsResponse creates a ListSessionsResponse from domain Sessions.
func NewListSessionsResponse(sessions []*domainsession.Session) *ListSessionsResponse {
	return &ListSessionsResponse{
		Object: "list",
		Data:   lo.Map(sessions, func(s *domainsession.Session, _ int) *SessionResponse { return NewSessionResponse(s) }),
	}
}

// NewListLiveCallsResponse applies the dashboard's display defaults to active calls.
func NewListLiveCallsResponse(calls []*domainsession.LiveCall) *ListLiveCallsResponse {
	data := lo.Map(calls, func(call *domainsession.LiveCall, _ int) *LiveCallResponse {
		sess := call.Session
		agentName := unknownAgent
		if sess.Agent != nil {
			agentName = sess.Agent.Name
		}
		return &LiveCallResponse{
			ID:        sess.ID,
			Phone:     orDefault(sess.CustomerPhone, unknownPhone),
			Duration:  call.DurationSeconds,
			AgentName: agentName,
			Intent:    orDefault(sess.Intent, defaultIntent),
			Sentiment: orDefault(sess.Sentiment, domainsession.DefaultSentiment),
			Language:  orDefault(sess.Language, domainsession.DefaultLanguage),
			RoomName:  sess.RoomName,
		}
	})
	return &ListLiveCallsResponse{Object: "list", Data: data}
}

// NewStatsResponse creates a StatsResponse.
func NewStatsResponse(stats *domainsession.Stats) *StatsResponse {
	return &StatsResponse{
		TotalCallsToday:    stats.TotalCallsToday,
		AvgDurationSeconds: stats.AvgDurationSeconds,
		SatisfactionRate:   stats.SatisfactionRate,
		ActiveCalls:        stats.ActiveCalls,
	}
}

func newAgentSummary(a agent.Summary) AgentSummary {
	return AgentSummary{
		ID:           a.ID,
		Name:         a.Name,
		PersonaName:  a.PersonaName,
		SystemPrompt: a.SystemPrompt,
		VoiceGender:  a.VoiceGender,
		VoiceAccent:  a.VoiceAccent,
	}
}

func orDefault(value *string, fallback string) string {
	v, _ := lo.Coalesce(lo.FromPtr(value), fallback)
	return v
}
