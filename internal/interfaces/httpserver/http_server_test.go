package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
	agentrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/agent"
	callrecordrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/store"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
)

const (
	jwtSecret  = "test-project-secret"
	ownerID    = "3f0c1d8e-0000-4000-8000-000000000001"
	strangerID = "3f0c1d8e-0000-4000-8000-000000000002"
	agentID    = "9b5e2a10-0000-4000-8000-0000000000aa"
)

type testServer struct {
	handler http.Handler
	store   *store.MemoryStore
	calls   *callrecordrepo.InMemoryRepository
	now     time.Time
}

func newTestServer(t *testing.T, ready httpserver.ReadinessCheck) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServiceName:      "voice-broker",
		Environment:      "test",
		HTTPPort:         0,
		ShutdownTimeout:  time.Second,
		LiveKitURL:       "wss://voice.example.livekit.cloud",
		LiveKitAPIKey:    "APIkey",
		LiveKitAPISecret: "api-secret",
	}

	ts := &testServer{
		store: store.NewMemoryStore(zerolog.Nop()),
		calls: callrecordrepo.NewInMemoryRepository(),
		now:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	voiceGender := "female"
	agents := agentrepo.NewInMemoryRepository(agent.Agent{
		ID:          agentID,
		UserID:      ownerID,
		Name:        "Front Desk",
		VoiceGender: &voiceGender,
	})

	svc := session.NewService(
		agents,
		ts.store,
		ts.calls,
		livekit.NewTokenGenerator(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret),
		cfg.LiveKitURL,
		zerolog.Nop(),
		session.WithClock(func() time.Time { return ts.now }),
	)

	provider := handlers.NewProvider(
		handlers.NewSessionHandler(svc),
		handlers.NewCallLogHandler(callrecord.NewService(ts.calls, agents, zerolog.Nop())),
		handlers.NewWebhookHandler(nil, svc, zerolog.Nop()),
	)
	resolver := auth.NewSecretResolver(jwtSecret, "authenticated", 0)

	ts.handler = httpserver.New(cfg, zerolog.Nop(), provider, resolver, ready).Handler()
	return ts
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"aud": "authenticated",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (ts *testServer) do(t *testing.T, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

type tokenResponse struct {
	Token     string         `json:"token"`
	URL       string         `json:"url"`
	RoomName  string         `json:"roomName"`
	SessionID string         `json:"sessionId"`
	Agent     map[string]any `json:"agent"`
}

func TestIssueAndEndVoiceSession(t *testing.T) {
	ts := newTestServer(t, nil)
	owner := bearer(t, ownerID)

	rec := ts.do(t, http.MethodPost, "/v1/livekit-token", owner, map[string]string{"agentId": agentID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var issued tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))
	assert.Equal(t, "wss://voice.example.livekit.cloud", issued.URL)
	assert.Equal(t, "agent-"+agentID+"-1717232400000", issued.RoomName)
	assert.NotEmpty(t, issued.SessionID)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, agentID, issued.Agent["id"])
	assert.Equal(t, "Front Desk", issued.Agent["name"])
	assert.Equal(t, "female", issued.Agent["voice_gender"])
	assert.Contains(t, issued.Agent, "persona_name")
	assert.Nil(t, issued.Agent["persona_name"])

	ts.now = ts.now.Add(125*time.Second + 400*time.Millisecond)

	rec = ts.do(t, http.MethodPost, "/v1/end-voice-session", owner, map[string]string{"sessionId": issued.SessionID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true,"durationSeconds":125}`, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/v1/end-voice-session", owner, map[string]string{"sessionId": issued.SessionID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Session already ended"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/v1/voice-sessions/"+issued.SessionID, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ended", got["status"])
	assert.Equal(t, float64(125), got["duration_seconds"])
	assert.Equal(t, "neutral", got["sentiment"])
	assert.Equal(t, "English", got["language"])

	require.Len(t, ts.calls.Records(), 1)
}

func TestFunctionsPrefixAlias(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/functions/v1/livekit-token", bearer(t, ownerID), map[string]string{"agentId": agentID})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenEndpointErrors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name       string
		path       string
		auth       string
		body       any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing authorization",
			path:       "/v1/livekit-token",
			body:       map[string]string{"agentId": agentID},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header required"}`,
		},
		{
			name:       "invalid token",
			path:       "/v1/livekit-token",
			auth:       "Bearer not-a-token",
			body:       map[string]string{"agentId": agentID},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:       "missing agent id",
			path:       "/v1/livekit-token",
			auth:       bearer(t, ownerID),
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Agent ID is required"}`,
		},
		{
			name:       "agent owned by someone else",
			path:       "/v1/livekit-token",
			auth:       bearer(t, strangerID),
			body:       map[string]string{"agentId": agentID},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Agent not found or unauthorized"}`,
		},
		{
			name:       "unknown agent",
			path:       "/v1/livekit-token",
			auth:       bearer(t, ownerID),
			body:       map[string]string{"agentId": "missing"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Agent not found or unauthorized"}`,
		},
		{
			name:       "missing session id",
			path:       "/v1/end-voice-session",
			auth:       bearer(t, ownerID),
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Session ID is required"}`,
		},
		{
			name:       "unknown session",
			path:       "/v1/end-voice-session",
			auth:       bearer(t, ownerID),
			body:       map[string]string{"sessionId": "missing"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Session not found"}`,
		},
		{
			name:       "end without authorization",
			path:       "/v1/end-voice-session",
			body:       map[string]string{"sessionId": "missing"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Authorization header required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, tt.path, tt.auth, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	sessions, err := ts.store.List(context.Background(), session.Filter{})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestPreflight(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodOptions, "/functions/v1/end-voice-session", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestDashboardQueries(t *testing.T) {
	ts := newTestServer(t, nil)
	owner := bearer(t, ownerID)

	rec := ts.do(t, http.MethodPost, "/v1/livekit-token", owner, map[string]string{"agentId": agentID, "roomName": "front-desk-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	changed, err := ts.store.MarkActive(context.Background(), "front-desk-1")
	require.NoError(t, err)
	require.True(t, changed)
	ts.now = ts.now.Add(42 * time.Second)

	rec = ts.do(t, http.MethodGet, "/v1/voice-sessions/live", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var live struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &live))
	require.Len(t, live.Data, 1)
	assert.Equal(t, "Unknown", live.Data[0]["phone"])
	assert.Equal(t, "Front Desk", live.Data[0]["agentName"])
	assert.Equal(t, "General inquiry", live.Data[0]["intent"])
	assert.Equal(t, float64(42), live.Data[0]["duration"])

	rec = ts.do(t, http.MethodGet, "/v1/voice-sessions/stats", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalCallsToday":0,"avgDurationSeconds":0,"satisfactionRate":0,"activeCalls":1}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/v1/voice-sessions?agentId="+agentID, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "front-desk-1", list.Data[0]["room_name"])

	rec = ts.do(t, http.MethodGet, "/v1/voice-sessions", bearer(t, strangerID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"object":"list","data":[]}`, rec.Body.String())
}

func TestCallLogs(t *testing.T) {
	ts := newTestServer(t, nil)
	owner := bearer(t, ownerID)

	rec := ts.do(t, http.MethodGet, "/v1/call-logs/analytics", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"totalCalls": 0,
		"avgDuration": 0,
		"containmentRate": 0,
		"sentimentCounts": {"positive": 0, "neutral": 0, "negative": 0},
		"outcomeCounts": {"resolved": 0, "escalated": 0, "abandoned": 0},
		"languageCounts": {}
	}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/v1/call-logs", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"object":"list","data":[]}`, rec.Body.String())

	for _, d := range []time.Duration{40 * time.Second, 61 * time.Second} {
		rec = ts.do(t, http.MethodPost, "/v1/livekit-token", owner, map[string]string{"agentId": agentID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var issued tokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))

		ts.now = ts.now.Add(d)
		rec = ts.do(t, http.MethodPost, "/v1/end-voice-session", owner, map[string]string{"sessionId": issued.SessionID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/v1/call-logs?agentId="+agentID, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Object string           `json:"object"`
		Data   []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, float64(61), list.Data[0]["duration_seconds"])
	assert.Equal(t, float64(40), list.Data[1]["duration_seconds"])
	assert.Equal(t, map[string]any{"name": "Front Desk"}, list.Data[0]["agents"])
	assert.Equal(t, "resolved", list.Data[0]["outcome"])

	rec = ts.do(t, http.MethodGet, "/v1/call-logs/analytics", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalCalls": 2,
		"avgDuration": 51,
		"containmentRate": 100,
		"sentimentCounts": {"positive": 0, "neutral": 2, "negative": 0},
		"outcomeCounts": {"resolved": 2, "escalated": 0, "abandoned": 0},
		"languageCounts": {"English": 2}
	}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/v1/call-logs", bearer(t, strangerID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"object":"list","data":[]}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/v1/call-logs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = ts.do(t, http.MethodGet, "/v1/call-logs/analytics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookDisabledWithoutKeys(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/v1/livekit/webhook", "", map[string]string{"event": "participant_joined"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthAndReadiness(t *testing.T) {
	ts := newTestServer(t, func(context.Context) error { return errors.New("database unreachable") })

	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready := newTestServer(t, func(context.Context) error { return nil })
	rec = ready.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
