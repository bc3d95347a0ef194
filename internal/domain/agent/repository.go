package agent

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no agent matches both the id and the owner.
var ErrNotFound = errors.New("agent not found")

// Repository exposes read access to agents.
type Repository interface {
	// FindOwned returns the agent with id owned by userID. An agent owned by
	// someone else is reported as ErrNotFound.
	FindOwned(ctx context.Context, id, userID string) (*Agent, error)

	// FindByIDs returns the agents with the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*Agent, error)
}
