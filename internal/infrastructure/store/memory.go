package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
)

var (
	// ErrSessionAlreadyExists is returned when trying to create a session that already exists.
	ErrSessionAlreadyExists = errors.New("session already exists")
	// ErrRoomAlreadyExists is returned when trying to create a session with a room that already exists.
	ErrRoomAlreadyExists = errors.New("room already exists")
)

// MemoryStore is a mutex-based in-memory session store.
// Callers always receive copies, so mutations never leak back into the store.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*session.Session
	roomIndex map[string]string // room -> session ID
	log       zerolog.Logger
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore(log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]*session.Session),
		roomIndex: make(map[string]string),
		log:       log.With().Str("component", "session-store").Logger(),
	}
}

// Create stores a new session.
func (s *MemoryStore) Create(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return ErrSessionAlreadyExists
	}
	if _, exists := s.roomIndex[sess.RoomName]; exists {
		return ErrRoomAlreadyExists
	}

	stored := *sess
	stored.Agent = nil
	s.sessions[sess.ID] = &stored
	s.roomIndex[sess.RoomName] = sess.ID
	return nil
}

// GetOwned retrieves a session by ID and owner.
func (s *MemoryStore) GetOwned(ctx context.Context, id, userID string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || sess.UserID != userID {
		return nil, session.ErrNotFound
	}
	out := *sess
	return &out, nil
}

// MarkEnded closes a non-terminal session.
func (s *MemoryStore) MarkEnded(ctx context.Context, id, userID string, c session.Completion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.UserID != userID {
		return session.ErrNotFound
	}
	if sess.Status == session.StatusEnded {
		return session.ErrAlreadyEnded
	}

	endedAt := c.EndedAt
	duration := c.DurationSeconds
	sentiment := c.Sentiment
	language := c.Language

	sess.Status = session.StatusEnded
	sess.EndedAt = &endedAt
	sess.DurationSeconds = &duration
	sess.Transcript = c.Transcript
	sess.Sentiment = &sentiment
	sess.Intent = c.Intent
	sess.Language = &language
	return nil
}

// MarkActive moves the connecting session for room to active.
func (s *MemoryStore) MarkActive(ctx context.Context, room string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.roomIndex[room]
	if !ok {
		return false, nil
	}
	sess, ok := s.sessions[sessionID]
	if !ok || sess.Status != session.StatusConnecting {
		return false, nil
	}
	sess.Status = session.StatusActive
	return true, nil
}

// List returns matching sessions, newest first.
func (s *MemoryStore) List(ctx context.Context, filter session.Filter) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if !matches(sess, filter) {
			continue
		}
		out := *sess
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func matches(sess *session.Session, filter session.Filter) bool {
	switch {
	case filter.UserID != "" && sess.UserID != filter.UserID:
		return false
	case filter.AgentID != "" && sess.AgentID != filter.AgentID:
		return false
	case filter.Status != "" && sess.Status != filter.Status:
		return false
	case filter.StartedSince != nil && sess.StartedAt.Before(*filter.StartedSince):
		return false
	}
	return true
}
