package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/metrics"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

// TokenGenerator mints room access tokens.
type TokenGenerator interface {
	Configured() bool
	Generate(room, identity, name string, now time.Time) (string, error)
}

// Service defines the business operations for voice sessions.
type Service interface {
	Issue(ctx context.Context, userID string, req IssueRequest) (*IssueResult, error)
	Finalize(ctx context.Context, userID string, req FinalizeRequest) (*FinalizeResult, error)
	Get(ctx context.Context, userID, id string) (*Session, error)
	List(ctx context.Context, userID, agentID string) ([]*Session, error)
	ListLive(ctx context.Context, userID string) ([]*LiveCall, error)
	Stats(ctx context.Context, userID string) (*Stats, error)
	MarkRoomActive(ctx context.Context, room string) (bool, error)
}

// Option customizes a service.
type Option func(*service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	agents   agent.Repository
	store    Store
	calls    callrecord.Repository
	tokenGen TokenGenerator
	wsURL    string
	now      func() time.Time
	log      zerolog.Logger
}

// NewService creates a new session service.
func NewService(
	agents agent.Repository,
	store Store,
	calls callrecord.Repository,
	tokenGen TokenGenerator,
	wsURL string,
	log zerolog.Logger,
	opts ...Option,
) Service {
	s := &service{
		agents:   agents,
		store:    store,
		calls:    calls,
		tokenGen: tokenGen,
		wsURL:    wsURL,
		now:      time.Now,
		log:      log.With().Str("component", "session-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Issue(ctx context.Context, userID string, req IssueRequest) (*IssueResult, error) {
	if s.tokenGen == nil || !s.tokenGen.Configured() || s.wsURL == "" {
		s.log.Error().Msg("missing LiveKit configuration")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"LiveKit configuration missing", nil)
	}

	agentID := strings.TrimSpace(req.AgentID)
	if agentID == "" {
		return nil, platformerrors.InvalidArgument(ctx, platformerrors.LayerDomain, "Agent ID is required")
	}

	ag, err := s.agents.FindOwned(ctx, agentID, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("agent_id", agentID).Str("user_id", userID).Msg("agent lookup failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Agent not found or unauthorized", err)
	}

	now := s.now()
	roomName := strings.TrimSpace(req.RoomName)
	if roomName == "" {
		roomName = fmt.Sprintf("agent-%s-%d", agentID, now.UnixMilli())
	}
	identity := "user-" + userID
	displayName := lo.Ternary(strings.TrimSpace(req.ParticipantName) != "", req.ParticipantName, DefaultParticipantName)

	start := time.Now()
	token, err := s.tokenGen.Generate(roomName, identity, displayName, now)
	metrics.ObserveTokenGeneration(time.Since(start))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"Failed to generate token", err)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		AgentID:   ag.ID,
		RoomName:  roomName,
		Status:    StatusConnecting,
		StartedAt: now,
		CreatedAt: now,
	}

	result := &IssueResult{
		Token:    token,
		URL:      s.wsURL,
		RoomName: roomName,
		Agent:    ag.Summary(),
	}

	// The token alone is enough to join the room, so a failed insert is not fatal.
	if err := s.store.Create(ctx, sess); err != nil {
		s.log.Error().Err(err).Str("room", roomName).Str("agent_id", ag.ID).Msg("failed to create session")
		metrics.RecordTokenIssued(false)
		return result, nil
	}
	result.SessionID = sess.ID
	metrics.RecordTokenIssued(true)

	s.log.Info().
		Str("session_id", sess.ID).
		Str("user_id", userID).
		Str("agent_id", ag.ID).
		Str("room", roomName).
		Msg("session created")

	return result, nil
}

func (s *service) Finalize(ctx context.Context, userID string, req FinalizeRequest) (*FinalizeResult, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return nil, platformerrors.InvalidArgument(ctx, platformerrors.LayerDomain, "Session ID is required")
	}

	sess, err := s.store.GetOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, s.lookupError(ctx, sessionID, err)
	}
	if sess.Terminal() {
		return nil, platformerrors.InvalidArgument(ctx, platformerrors.LayerDomain, "Session already ended")
	}

	endedAt := s.now()
	duration := max(0, int(math.Round(endedAt.Sub(sess.StartedAt).Seconds())))

	completion := Completion{
		EndedAt:         endedAt,
		DurationSeconds: duration,
		Transcript:      lo.EmptyableToPtr(req.Transcript),
		Sentiment:       lo.Ternary(req.Sentiment != "", req.Sentiment, DefaultSentiment),
		Intent:          lo.EmptyableToPtr(req.Intent),
		Language:        lo.Ternary(req.Language != "", req.Language, DefaultLanguage),
	}

	if err := s.store.MarkEnded(ctx, sess.ID, userID, completion); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyEnded):
			return nil, platformerrors.InvalidArgument(ctx, platformerrors.LayerDomain, "Session already ended")
		case errors.Is(err, ErrNotFound):
			return nil, s.lookupError(ctx, sessionID, err)
		}
		s.log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to update session")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"Failed to update session", err)
	}
	metrics.RecordSessionFinalized(string(sess.Status), duration)

	record := &callrecord.CallRecord{
		ID:              uuid.NewString(),
		AgentID:         sess.AgentID,
		UserID:          userID,
		DurationSeconds: duration,
		Sentiment:       completion.Sentiment,
		Outcome:         callrecord.OutcomeResolved,
		Intent:          completion.Intent,
		Language:        completion.Language,
		Transcript:      completion.Transcript,
		CustomerPhone:   sess.CustomerPhone,
		CreatedAt:       endedAt,
	}
	if err := s.calls.Insert(ctx, record); err != nil {
		s.log.Error().Err(err).Str("session_id", sess.ID).Msg("failed to create call record")
		metrics.CallRecordInsertFailures.Inc()
	}

	s.log.Info().
		Str("session_id", sess.ID).
		Str("user_id", userID).
		Int("duration_seconds", duration).
		Msg("session ended")

	return &FinalizeResult{DurationSeconds: duration}, nil
}

func (s *service) Get(ctx context.Context, userID, id string) (*Session, error) {
	sess, err := s.store.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, s.lookupError(ctx, id, err)
	}
	if err := s.attachAgents(ctx, []*Session{sess}); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) List(ctx context.Context, userID, agentID string) ([]*Session, error) {
	sessions, err := s.store.List(ctx, Filter{UserID: userID, AgentID: agentID})
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	if err := s.attachAgents(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *service) ListLive(ctx context.Context, userID string) ([]*LiveCall, error) {
	sessions, err := s.store.List(ctx, Filter{UserID: userID, Status: StatusActive})
	if err != nil {
		return nil, s.listError(ctx, err)
	}
	if err := s.attachAgents(ctx, sessions); err != nil {
		return nil, err
	}

	now := s.now()
	return lo.Map(sessions, func(sess *Session, _ int) *LiveCall {
		return &LiveCall{
			Session:         sess,
			DurationSeconds: max(0, int(now.Sub(sess.StartedAt)/time.Second)),
		}
	}), nil
}

func (s *service) Stats(ctx context.Context, userID string) (*Stats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sessions, err := s.store.List(ctx, Filter{UserID: userID, StartedSince: &midnight})
	if err != nil {
		return nil, s.listError(ctx, err)
	}

	completed := lo.Filter(sessions, func(sess *Session, _ int) bool { return sess.Status == StatusEnded })
	stats := &Stats{
		TotalCallsToday: len(completed),
		ActiveCalls:     lo.CountBy(sessions, func(sess *Session) bool { return sess.Status == StatusActive }),
	}
	if len(completed) == 0 {
		return stats, nil
	}

	total := lo.SumBy(completed, func(sess *Session) int { return lo.FromPtr(sess.DurationSeconds) })
	positive := lo.CountBy(completed, func(sess *Session) bool { return lo.FromPtr(sess.Sentiment) == "positive" })
	stats.AvgDurationSeconds = int(math.Round(float64(total) / float64(len(completed))))
	stats.SatisfactionRate = int(math.Round(float64(positive) / float64(len(completed)) * 100))
	return stats, nil
}

func (s *service) MarkRoomActive(ctx context.Context, room string) (bool, error) {
	changed, err := s.store.MarkActive(ctx, room)
	if err != nil {
		return false, err
	}
	if changed {
		metrics.SessionStateTransitions.WithLabelValues(string(StatusConnecting), string(StatusActive)).Inc()
		s.log.Info().Str("room", room).Msg("session active")
	}
	return changed, nil
}

func (s *service) attachAgents(ctx context.Context, sessions []*Session) error {
	if len(sessions) == 0 {
		return nil
	}
	ids := lo.Uniq(lo.Map(sessions, func(sess *Session, _ int) string { return sess.AgentID }))
	agents, err := s.agents.FindByIDs(ctx, ids)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
			"Failed to load agents", err)
	}
	for _, sess := range sessions {
		if ag, ok := agents[sess.AgentID]; ok {
			sess.Agent = lo.ToPtr(ag.Summary())
		}
	}
	return nil
}

func (s *service) lookupError(ctx context.Context, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Session not found", err)
	}
	s.log.Error().Err(err).Str("session_id", id).Msg("session lookup failed")
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
		"Session not found", err)
}

func (s *service) listError(ctx context.Context, err error) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal,
		"Failed to load sessions", err)
}
