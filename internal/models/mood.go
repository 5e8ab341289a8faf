package models

import "time"

const (
	MinMoodScore = 1
	MaxMoodScore = 5
)

type MoodEntry struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_user_mood_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_mood_date"`
	Score      int       `gorm:"not null"`
	Reflection string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ValidMoodScore(score int) bool {
	return score >= MinMoodScore && score <= MaxMoodScore
}
