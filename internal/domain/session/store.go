package session

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no session matches both the id and the owner.
	ErrNotFound = errors.New("session not found")
	// ErrAlreadyEnded is returned when finalizing a session that is already terminal.
	ErrAlreadyEnded = errors.New("session already ended")
)

// Store defines the interface for session storage.
// Status transitions are conditional writes so concurrent callers cannot
// move a session out of the ended state.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// GetOwned retrieves a session by id, scoped to its owner.
	GetOwned(ctx context.Context, id, userID string) (*Session, error)

	// MarkEnded closes a non-terminal session owned by userID.
	// Returns ErrAlreadyEnded if the session was ended first.
	MarkEnded(ctx context.Context, id, userID string, completion Completion) error

	// MarkActive moves the connecting session for room to active. It reports
	// whether a row changed.
	MarkActive(ctx context.Context, room string) (bool, error)

	// List returns sessions matching filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Session, error)
}
