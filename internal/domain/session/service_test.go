package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
	agentrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/agent"
	callrecordrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/store"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

const (
	ownerID = "11111111-1111-1111-1111-111111111111"
	otherID = "22222222-2222-2222-2222-222222222222"
	agentID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	wsURL   = "wss://voice.example.livekit.cloud"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type failingCallRecords struct {
	attempts int
}

func (f *failingCallRecords) Insert(ctx context.Context, record *callrecord.CallRecord) error {
	f.attempts++
	return errors.New("insert call_logs: connection reset")
}

func (f *failingCallRecords) List(ctx context.Context, userID, agentID string) ([]*callrecord.CallRecord, error) {
	return nil, nil
}

type failingCreateStore struct {
	session.Store
}

func (f failingCreateStore) Create(ctx context.Context, sess *session.Session) error {
	return errors.New("insert voice_sessions: connection reset")
}

type failingEndStore struct {
	session.Store
}

func (f failingEndStore) MarkEnded(ctx context.Context, id, userID string, c session.Completion) error {
	return errors.New("update voice_sessions: connection reset")
}

type fixture struct {
	svc      session.Service
	store    *store.MemoryStore
	agents   *agentrepo.InMemoryRepository
	calls    *callrecordrepo.InMemoryRepository
	clock    *fakeClock
	tokenGen *livekit.TokenGenerator
}

type fixtureOptions struct {
	store    session.Store
	calls    callrecord.Repository
	tokenGen session.TokenGenerator
	wsURL    *string
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	t.Helper()

	f := &fixture{
		store:    store.NewMemoryStore(zerolog.Nop()),
		agents:   agentrepo.NewInMemoryRepository(),
		calls:    callrecordrepo.NewInMemoryRepository(),
		clock:    &fakeClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
		tokenGen: livekit.NewTokenGenerator("APIkey", "secret"),
	}
	persona := "Ava"
	f.agents.Put(agent.Agent{ID: agentID, UserID: ownerID, Name: "Support Bot", PersonaName: &persona})

	var st session.Store = f.store
	if opts.store != nil {
		st = opts.store
	}
	var calls callrecord.Repository = f.calls
	if opts.calls != nil {
		calls = opts.calls
	}
	var gen session.TokenGenerator = f.tokenGen
	if opts.tokenGen != nil {
		gen = opts.tokenGen
	}
	url := wsURL
	if opts.wsURL != nil {
		url = *opts.wsURL
	}

	f.svc = session.NewService(f.agents, st, calls, gen, url, zerolog.Nop(), session.WithClock(f.clock.Now))
	return f
}

func (f *fixture) issue(t *testing.T) *session.IssueResult {
	t.Helper()
	res, err := f.svc.Issue(context.Background(), ownerID, session.IssueRequest{AgentID: agentID})
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionID)
	return res
}

func TestIssueCreatesConnectingSession(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	ctx := context.Background()

	res, err := f.svc.Issue(ctx, ownerID, session.IssueRequest{AgentID: agentID, ParticipantName: "Dana"})
	require.NoError(t, err)

	assert.Equal(t, wsURL, res.URL)
	assert.Equal(t, "agent-"+agentID+"-1717236000000", res.RoomName)
	assert.Equal(t, agentID, res.Agent.ID)
	assert.Equal(t, "Support Bot", res.Agent.Name)
	require.NotNil(t, res.Agent.PersonaName)
	assert.Equal(t, "Ava", *res.Agent.PersonaName)

	want, err := f.tokenGen.Generate(res.RoomName, "user-"+ownerID, "Dana", f.clock.now)
	require.NoError(t, err)
	assert.Equal(t, want, res.Token)

	sess, err := f.store.GetOwned(ctx, res.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusConnecting, sess.Status)
	assert.Equal(t, res.RoomName, sess.RoomName)
	assert.Equal(t, agentID, sess.AgentID)
	assert.Equal(t, f.clock.now, sess.StartedAt)
	assert.Nil(t, sess.EndedAt)
	assert.Nil(t, sess.DurationSeconds)
}

func TestIssueUsesRoomOverrideAndDefaultName(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	res, err := f.svc.Issue(context.Background(), ownerID, session.IssueRequest{AgentID: agentID, RoomName: "custom-room"})
	require.NoError(t, err)
	assert.Equal(t, "custom-room", res.RoomName)

	want, err := f.tokenGen.Generate("custom-room", "user-"+ownerID, session.DefaultParticipantName, f.clock.now)
	require.NoError(t, err)
	assert.Equal(t, want, res.Token)
}

func TestIssueTwiceYieldsDistinctRoomsAndSessions(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	first := f.issue(t)
	f.clock.Advance(time.Millisecond)
	second := f.issue(t)

	assert.NotEqual(t, first.RoomName, second.RoomName)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestIssueRejectsForeignAgent(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	foreign, err := f.svc.Issue(context.Background(), otherID, session.IssueRequest{AgentID: agentID})
	require.Error(t, err)
	assert.Nil(t, foreign)

	missing, err2 := f.svc.Issue(context.Background(), otherID, session.IssueRequest{AgentID: "does-not-exist"})
	require.Error(t, err2)
	assert.Nil(t, missing)

	for _, e := range []error{err, err2} {
		assert.True(t, platformerrors.IsErrorType(e, platformerrors.ErrorTypeNotFound))
		assert.Equal(t, "Agent not found or unauthorized", platformerrors.GetPlatformError(e).Message)
	}

	sessions, err := f.store.List(context.Background(), session.Filter{})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestIssueValidation(t *testing.T) {
	empty := ""
	tests := []struct {
		name    string
		opts    fixtureOptions
		req     session.IssueRequest
		errType platformerrors.ErrorType
		message string
	}{
		{
			name:    "missing agent id",
			req:     session.IssueRequest{AgentID: "  "},
			errType: platformerrors.ErrorTypeValidation,
			message: "Agent ID is required",
		},
		{
			name:    "missing key pair",
			opts:    fixtureOptions{tokenGen: livekit.NewTokenGenerator("", "")},
			req:     session.IssueRequest{AgentID: agentID},
			errType: platformerrors.ErrorTypeInternal,
			message: "LiveKit configuration missing",
		},
		{
			name:    "missing url",
			opts:    fixtureOptions{wsURL: &empty},
			req:     session.IssueRequest{AgentID: agentID},
			errType: platformerrors.ErrorTypeInternal,
			message: "LiveKit configuration missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.opts)
			res, err := f.svc.Issue(context.Background(), ownerID, tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, platformerrors.IsErrorType(err, tt.errType))
			assert.Equal(t, tt.message, platformerrors.GetPlatformError(err).Message)
		})
	}
}

func TestIssueToleratesSessionInsertFailure(t *testing.T) {
	f := newFixture(t, fixtureOptions{store: failingCreateStore{Store: store.NewMemoryStore(zerolog.Nop())}})

	res, err := f.svc.Issue(context.Background(), ownerID, session.IssueRequest{AgentID: agentID})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, res.SessionID)
	assert.Equal(t, 3, len(strings.Split(res.Token, ".")))
}

func TestFinalizeComputesRoundedDuration(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"rounds down", 125*time.Second + 400*time.Millisecond, 125},
		{"rounds half up", 125*time.Second + 500*time.Millisecond, 126},
		{"immediate", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, fixtureOptions{})
			issued := f.issue(t)
			startedAt := f.clock.now

			f.clock.Advance(tt.elapsed)
			res, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.DurationSeconds)

			sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
			require.NoError(t, err)
			assert.Equal(t, session.StatusEnded, sess.Status)
			require.NotNil(t, sess.EndedAt)
			require.NotNil(t, sess.DurationSeconds)
			assert.Equal(t, startedAt.Add(tt.elapsed), *sess.EndedAt)
			assert.Equal(t, tt.want, *sess.DurationSeconds)
		})
	}
}

func TestFinalizeDefaultsAnnotations(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)
	f.clock.Advance(30 * time.Second)

	_, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.NoError(t, err)

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, sess.Sentiment)
	require.NotNil(t, sess.Language)
	assert.Equal(t, "neutral", *sess.Sentiment)
	assert.Equal(t, "English", *sess.Language)
	assert.Nil(t, sess.Transcript)
	assert.Nil(t, sess.Intent)

	records := f.calls.Records()
	require.Len(t, records, 1)
	assert.Equal(t, callrecord.OutcomeResolved, records[0].Outcome)
	assert.Equal(t, 30, records[0].DurationSeconds)
	assert.Equal(t, "neutral", records[0].Sentiment)
	assert.Equal(t, "English", records[0].Language)
	assert.Equal(t, agentID, records[0].AgentID)
	assert.Equal(t, ownerID, records[0].UserID)
}

func TestFinalizeStoresAnnotations(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)
	f.clock.Advance(10 * time.Second)

	_, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{
		SessionID:  issued.SessionID,
		Transcript: "hello",
		Sentiment:  "positive",
		Intent:     "billing",
		Language:   "Spanish",
	})
	require.NoError(t, err)

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "hello", *sess.Transcript)
	assert.Equal(t, "positive", *sess.Sentiment)
	assert.Equal(t, "billing", *sess.Intent)
	assert.Equal(t, "Spanish", *sess.Language)
}

func TestFinalizeUnknownSessionPerformsNoWrites(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)

	for _, tc := range []struct{ user, id string }{
		{ownerID, "missing"},
		{otherID, issued.SessionID},
	} {
		res, err := f.svc.Finalize(context.Background(), tc.user, session.FinalizeRequest{SessionID: tc.id})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
		assert.Equal(t, "Session not found", platformerrors.GetPlatformError(err).Message)
	}

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusConnecting, sess.Status)
	assert.Empty(t, f.calls.Records())
}

func TestFinalizeRequiresSessionID(t *testing.T) {
	f := newFixture(t, fixtureOptions{})

	_, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Equal(t, "Session ID is required", platformerrors.GetPlatformError(err).Message)
}

func TestFinalizeSucceedsWhenCallRecordInsertFails(t *testing.T) {
	calls := &failingCallRecords{}
	f := newFixture(t, fixtureOptions{calls: calls})
	issued := f.issue(t)
	f.clock.Advance(42 * time.Second)

	res, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 42, res.DurationSeconds)
	assert.Equal(t, 1, calls.attempts)

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusEnded, sess.Status)
}

func TestFinalizeUpdateFailureIsInternal(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)
	g := newFixture(t, fixtureOptions{store: failingEndStore{Store: f.store}})

	_, err := g.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeInternal))
	assert.Equal(t, "Failed to update session", platformerrors.GetPlatformError(err).Message)

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusConnecting, sess.Status)
	assert.Empty(t, g.calls.Records())
}

func TestFinalizeRejectsEndedSession(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)
	f.clock.Advance(5 * time.Second)

	_, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	_, err = f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Equal(t, "Session already ended", platformerrors.GetPlatformError(err).Message)

	sess, err := f.store.GetOwned(context.Background(), issued.SessionID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 5, *sess.DurationSeconds)
	assert.Len(t, f.calls.Records(), 1)
}

func TestFinalizeFromActive(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	issued := f.issue(t)

	changed, err := f.svc.MarkRoomActive(context.Background(), issued.RoomName)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.svc.MarkRoomActive(context.Background(), issued.RoomName)
	require.NoError(t, err)
	assert.False(t, changed)

	f.clock.Advance(3 * time.Second)
	res, err := f.svc.Finalize(context.Background(), ownerID, session.FinalizeRequest{SessionID: issued.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 3, res.DurationSeconds)
}

func TestListAndLive(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	ctx := context.Background()

	first := f.issue(t)
	f.clock.Advance(time.Second)
	second := f.issue(t)

	_, err := f.svc.MarkRoomActive(ctx, second.RoomName)
	require.NoError(t, err)

	all, err := f.svc.List(ctx, ownerID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.SessionID, all[0].ID)
	assert.Equal(t, first.SessionID, all[1].ID)
	require.NotNil(t, all[0].Agent)
	assert.Equal(t, "Support Bot", all[0].Agent.Name)

	byAgent, err := f.svc.List(ctx, ownerID, "other-agent")
	require.NoError(t, err)
	assert.Empty(t, byAgent)

	foreign, err := f.svc.List(ctx, otherID, "")
	require.NoError(t, err)
	assert.Empty(t, foreign)

	f.clock.Advance(90 * time.Second)
	live, err := f.svc.ListLive(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, second.SessionID, live[0].Session.ID)
	assert.Equal(t, 90, live[0].DurationSeconds)

	got, err := f.svc.Get(ctx, ownerID, first.SessionID)
	require.NoError(t, err)
	assert.Equal(t, first.RoomName, got.RoomName)

	_, err = f.svc.Get(ctx, otherID, first.SessionID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestStats(t *testing.T) {
	f := newFixture(t, fixtureOptions{})
	ctx := context.Background()

	finish := func(elapsed time.Duration, sentiment string) {
		issued := f.issue(t)
		f.clock.Advance(elapsed)
		_, err := f.svc.Finalize(ctx, ownerID, session.FinalizeRequest{SessionID: issued.SessionID, Sentiment: sentiment})
		require.NoError(t, err)
	}

	finish(10*time.Second, "positive")
	finish(20*time.Second, "negative")
	finish(31*time.Second, "")

	active := f.issue(t)
	_, err := f.svc.MarkRoomActive(ctx, active.RoomName)
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	f.issue(t)

	stats, err := f.svc.Stats(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCallsToday)
	assert.Equal(t, 20, stats.AvgDurationSeconds)
	assert.Equal(t, 33, stats.SatisfactionRate)
	assert.Equal(t, 1, stats.ActiveCalls)

	empty, err := f.svc.Stats(ctx, otherID)
	require.NoError(t, err)
	assert.Equal(t, session.Stats{}, *empty)
}
