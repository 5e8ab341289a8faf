package models

import "time"

// HabitReminder rows are written only by the reminder scheduler.
// NextTriggerUTC always holds a UTC instant.
type HabitReminder struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;uniqueIndex:uidx_user_habit_reminder"`
	HabitID        uint      `gorm:"not null;uniqueIndex:uidx_user_habit_reminder"`
	NextTriggerUTC time.Time `gorm:"not null"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
