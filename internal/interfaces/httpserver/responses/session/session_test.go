package sessionres

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	domainsession "github.com/sango-07/xebia-voice-stuido/internal/domain/session"
)

func TestNewListLiveCallsResponseDefaults(t *testing.T) {
	started := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	resp := NewListLiveCallsResponse([]*domainsession.LiveCall{
		{
			Session: &domainsession.Session{
				ID:        "s1",
				RoomName:  "agent-a1-1",
				Status:    domainsession.StatusActive,
				StartedAt: started,
				Intent:    lo.ToPtr(""),
			},
			DurationSeconds: 42,
		},
		{
			Session: &domainsession.Session{
				ID:            "s2",
				RoomName:      "agent-a2-1",
				Status:        domainsession.StatusActive,
				StartedAt:     started,
				CustomerPhone: lo.ToPtr("+31 20 555 0100"),
				Intent:        lo.ToPtr("Billing"),
				Sentiment:     lo.ToPtr("positive"),
				Language:      lo.ToPtr("Dutch"),
				Agent:         &agent.Summary{ID: "a2", Name: "Billing Bot"},
			},
			DurationSeconds: 7,
		},
	})

	require.Len(t, resp.Data, 2)
	assert.Equal(t, "list", resp.Object)

	assert.Equal(t, &LiveCallResponse{
		ID:        "s1",
		Phone:     "Unknown",
		Duration:  42,
		AgentName: "Unknown Agent",
		Intent:    "General inquiry",
		Sentiment: "neutral",
		Language:  "English",
		RoomName:  "agent-a1-1",
	}, resp.Data[0])

	assert.Equal(t, &LiveCallResponse{
		ID:        "s2",
		Phone:     "+31 20 555 0100",
		Duration:  7,
		AgentName: "Billing Bot",
		Intent:    "Billing",
		Sentiment: "positive",
		Language:  "Dutch",
		RoomName:  "agent-a2-1",
	}, resp.Data[1])
}

func TestNewSessionResponseAgentExcerpt(t *testing.T) {
	sess := &domainsession.Session{ID: "s1", Status: domainsession.StatusConnecting}
	assert.Nil(t, NewSessionResponse(sess).Agent)

	sess.Agent = &agent.Summary{Name: "Front Desk", PersonaName: lo.ToPtr("Ava")}
	got := NewSessionResponse(sess)
	require.NotNil(t, got.Agent)
	assert.Equal(t, "Front Desk", got.Agent.Name)
	assert.Equal(t, "Ava", *got.Agent.PersonaName)
	assert.Equal(t, "connecting", got.Status)
}

func TestNewTokenResponseOmitsMissingSession(t *testing.T) {
	resp := NewTokenResponse(&domainsession.IssueResult{Token: "t", URL: "wss://x", RoomName: "r"})
	assert.Empty(t, resp.SessionID)
	assert.Equal(t, "r", resp.RoomName)
}
