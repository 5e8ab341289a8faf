package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
	CreatedAt    time.Time `gorm:"not null"`
}

const (
	DefaultTimezone         = "UTC"
	DefaultReminderHour     = 9
	DefaultLowMoodThreshold = 2
)

// UserSettings may be absent for a user; scheduling paths treat a
// missing row as "nothing to do" rather than an error.
type UserSettings struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;uniqueIndex"`
	Timezone         string `gorm:"not null;default:UTC"`
	ReminderHour     int    `gorm:"not null;default:9"`
	LowMoodThreshold int    `gorm:"not null;default:2"`
	NotifyLowMood    bool   `gorm:"not null;default:true"`
	UpdatedAt        time.Time
}

func DefaultUserSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:           userID,
		Timezone:         DefaultTimezone,
		ReminderHour:     DefaultReminderHour,
		LowMoodThreshold: DefaultLowMoodThreshold,
		NotifyLowMood:    true,
	}
}
