package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/database/entities"
)

// AutoMigrate creates or updates the tables the broker reads and writes.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Agent{},
		&entities.VoiceSession{},
		&entities.CallLog{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
