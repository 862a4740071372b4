package domain

import (
	"time"

	"gorm.io/datatypes"
)

// QuizSubmission keeps the raw quiz payload for later analysis; the
// derived preferences live in user_preferences.
type QuizSubmission struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null" json:"user_id"`
	Answers   datatypes.JSONMap `gorm:"column:answers;type:jsonb" json:"answers"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
