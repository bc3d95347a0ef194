package agent

import (
	"context"
	"sync"

	domain "github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
)

// InMemoryRepository is a thread-safe agent repository for local runs and tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	agents map[string]domain.Agent
}

// NewInMemoryRepository creates a repository holding the given agents.
func NewInMemoryRepository(agents ...domain.Agent) *InMemoryRepository {
	r := &InMemoryRepository{agents: make(map[string]domain.Agent, len(agents))}
	for _, a := range agents {
		r.agents[a.ID] = a
	}
	return r
}

// Put adds or replaces an agent.
func (r *InMemoryRepository) Put(a domain.Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.ID] = a
}

// FindOwned returns a copy of the agent when both id and owner match.
func (r *InMemoryRepository) FindOwned(ctx context.Context, id, userID string) (*domain.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.agents[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// FindByIDs returns copies of the known agents among ids.
func (r *InMemoryRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Agent, len(ids))
	for _, id := range ids {
		if a, ok := r.agents[id]; ok {
			out[id] = &a
		}
	}
	return out, nil
}
