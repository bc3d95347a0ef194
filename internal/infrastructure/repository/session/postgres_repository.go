package session

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/database/entities"
)

// PostgresRepository persists voice sessions via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new session row.
func (r *PostgresRepository) Create(ctx context.Context, sess *domain.Session) error {
	row := toEntity(sess)
	return r.db.WithContext(ctx).Create(&row).Error
}

// GetOwned loads a session by id and owner.
func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID string) (*domain.Session, error) {
	var row entities.VoiceSession
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

// MarkEnded closes the session in a single conditional UPDATE.
func (r *PostgresRepository) MarkEnded(ctx context.Context, id, userID string, c domain.Completion) error {
	res := r.db.WithContext(ctx).
		Model(&entities.VoiceSession{}).
		Where("id = ? AND user_id = ? AND status <> ?", id, userID, string(domain.StatusEnded)).
		Updates(map[string]any{
			"status":           string(domain.StatusEnded),
			"ended_at":         c.EndedAt,
			"duration_seconds": c.DurationSeconds,
			"transcript":       c.Transcript,
			"sentiment":        c.Sentiment,
			"intent":           c.Intent,
			"language":         c.Language,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.VoiceSession{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrAlreadyEnded
}

// MarkActive promotes the connecting session for room.
func (r *PostgresRepository) MarkActive(ctx context.Context, room string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.VoiceSession{}).
		Where("room_name = ? AND status = ?", room, string(domain.StatusConnecting)).
		Update("status", string(domain.StatusActive))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List returns matching sessions, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Session, error) {
	query := r.db.WithContext(ctx).Model(&entities.VoiceSession{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.AgentID != "" {
		query = query.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.StartedSince != nil {
		query = query.Where("started_at >= ?", *filter.StartedSince)
	}

	var rows []entities.VoiceSession
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Session, 0, len(rows))
	for i := range rows {
		out = append(out, toDomain(&rows[i]))
	}
	return out, nil
}

func toEntity(sess *domain.Session) entities.VoiceSession {
	return entities.VoiceSession{
		ID:              sess.ID,
		UserID:          sess.UserID,
		AgentID:         sess.AgentID,
		RoomName:        sess.RoomName,
		Status:          string(sess.Status),
		StartedAt:       sess.StartedAt,
		EndedAt:         sess.EndedAt,
		DurationSeconds: sess.DurationSeconds,
		Transcript:      sess.Transcript,
		Sentiment:       sess.Sentiment,
		Intent:          sess.Intent,
		Language:        sess.Language,
		CustomerPhone:   sess.CustomerPhone,
		CreatedAt:       sess.CreatedAt,
	}
}

func toDomain(row *entities.VoiceSession) *domain.Session {
	return &domain.Session{
		ID:              row.ID,
		UserID:          row.UserID,
		AgentID:         row.AgentID,
		RoomName:        row.RoomName,
		Status:          domain.Status(row.Status),
		StartedAt:       row.StartedAt,
		EndedAt:         row.EndedAt,
		DurationSeconds: row.DurationSeconds,
		Transcript:      row.Transcript,
		Sentiment:       row.Sentiment,
		Intent:          row.Intent,
		Language:        row.Language,
		CustomerPhone:   row.CustomerPhone,
		CreatedAt:       row.CreatedAt,
	}
}
