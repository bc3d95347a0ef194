package entities

import (
	"time"

	"github.com/lib/pq"
)

// Agent is the persisted voice agent. The broker only reads it.
type Agent struct {
	ID           string         `gorm:"type:uuid;primaryKey"`
	UserID       string         `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:text;not null"`
	PersonaName  *string        `gorm:"type:text"`
	SystemPrompt *string        `gorm:"type:text"`
	VoiceGender  *string        `gorm:"type:text"`
	VoiceAccent  *string        `gorm:"type:text"`
	Category     string         `gorm:"type:text;not null;default:'support'"`
	Status       string         `gorm:"type:text;not null;default:'draft'"`
	Languages    pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
