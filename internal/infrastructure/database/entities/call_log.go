package entities

import "time"

// CallLog is an append-only analytics row written when a session ends.
type CallLog struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	AgentID         string    `gorm:"type:uuid;not null;index"`
	UserID          string    `gorm:"type:uuid;not null;index"`
	DurationSeconds int       `gorm:"not null;default:0"`
	Sentiment       string    `gorm:"type:text;not null"`
	Outcome         string    `gorm:"type:text;not null"`
	Intent          *string   `gorm:"type:text"`
	Language        string    `gorm:"type:text;not null"`
	Transcript      *string   `gorm:"type:text"`
	CustomerPhone   *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (CallLog) TableName() string {
	return "call_logs"
}
