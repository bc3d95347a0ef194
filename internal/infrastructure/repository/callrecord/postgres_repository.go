package callrecord

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/database/entities"
)

// PostgresRepository appends call logs via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert writes a single call log row.
func (r *PostgresRepository) Insert(ctx context.Context, record *domain.CallRecord) error {
	row := entities.CallLog{
		ID:              record.ID,
		AgentID:         record.AgentID,
		UserID:          record.UserID,
		DurationSeconds: record.DurationSeconds,
		Sentiment:       record.Sentiment,
		Outcome:         string(record.Outcome),
		Intent:          record.Intent,
		Language:        record.Language,
		Transcript:      record.Transcript,
		CustomerPhone:   record.CustomerPhone,
		CreatedAt:       record.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// List returns userID's call logs newest first.
func (r *PostgresRepository) List(ctx context.Context, userID, agentID string) ([]*domain.CallRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if agentID != "" {
		query = query.Where("agent_id = ?", agentID)
	}

	var rows []entities.CallLog
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.CallRecord, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		out = append(out, &domain.CallRecord{
			ID:              row.ID,
			AgentID:         row.AgentID,
			UserID:          row.UserID,
			DurationSeconds: row.DurationSeconds,
			Sentiment:       row.Sentiment,
			Outcome:         domain.Outcome(row.Outcome),
			Intent:          row.Intent,
			Language:        row.Language,
			Transcript:      row.Transcript,
			CustomerPhone:   row.CustomerPhone,
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}
