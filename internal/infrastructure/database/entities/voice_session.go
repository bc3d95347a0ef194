package entities

import "time"

// VoiceSession is one call attempt. room_name joins it to LiveKit events.
type VoiceSession struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"type:uuid;not null;index"`
	AgentID         string    `gorm:"type:uuid;not null;index"`
	RoomName        string    `gorm:"type:text;not null;uniqueIndex"`
	Status          string    `gorm:"type:text;not null;default:'connecting';index"`
	StartedAt       time.Time `gorm:"not null"`
	EndedAt         *time.Time
	DurationSeconds *int
	Transcript      *string   `gorm:"type:text"`
	Sentiment       *string   `gorm:"type:text"`
	Intent          *string   `gorm:"type:text"`
	Language        *string   `gorm:"type:text"`
	CustomerPhone   *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (VoiceSession) TableName() string {
	return "voice_sessions"
}
