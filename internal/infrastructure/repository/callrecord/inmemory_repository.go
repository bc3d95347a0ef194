package callrecord

import (
	"context"
	"sort"
	"sync"

	domain "github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
)

// InMemoryRepository keeps call records in insertion order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []domain.CallRecord
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert appends a copy of record.
func (r *InMemoryRepository) Insert(ctx context.Context, record *domain.CallRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

// List returns copies of userID's records, newest first.
func (r *InMemoryRepository) List(ctx context.Context, userID, agentID string) ([]*domain.CallRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.CallRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.UserID != userID || (agentID != "" && rec.AgentID != agentID) {
			continue
		}
		out = append(out, &rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Records returns a snapshot of everything inserted so far.
func (r *InMemoryRepository) Records() []domain.CallRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CallRecord, len(r.records))
	copy(out, r.records)
	return out
}
