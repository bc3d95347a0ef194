package agent

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/database/entities"
)

// PostgresRepository reads agents via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindOwned returns the agent only when both id and owner match.
func (r *PostgresRepository) FindOwned(ctx context.Context, id, userID string) (*domain.Agent, error) {
	var record entities.Agent
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&record), nil
}

// FindByIDs returns the agents with the given ids.
func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Agent, error) {
	out := make(map[string]*domain.Agent, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var records []entities.Agent
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	for i := range records {
		out[records[i].ID] = toDomain(&records[i])
	}
	return out, nil
}

func toDomain(record *entities.Agent) *domain.Agent {
	return &domain.Agent{
		ID:           record.ID,
		UserID:       record.UserID,
		Name:         record.Name,
		PersonaName:  record.PersonaName,
		SystemPrompt: record.SystemPrompt,
		VoiceGender:  record.VoiceGender,
		VoiceAccent:  record.VoiceAccent,
		Category:     record.Category,
		Status:       record.Status,
		Languages:    []string(record.Languages),
	}
}
