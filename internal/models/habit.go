package models

import "time"

const (
	PeriodicityDaily   = "daily"
	PeriodicityWeekly  = "weekly"
	PeriodicityMonthly = "monthly"
)

// MaxHabitsPerUser is an advisory cap enforced by the habit write path,
// not by the database.
const MaxHabitsPerUser = 5

type Habit struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;uniqueIndex:uidx_user_habit"`
	Name        string `gorm:"not null;uniqueIndex:uidx_user_habit"`
	Description string
	Periodicity string    `gorm:"not null;default:daily"`
	CreatedAt   time.Time `gorm:"not null"`
}

func ValidPeriodicity(value string) bool {
	switch value {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly:
		return true
	default:
		return false
	}
}

type HabitCompletion struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_habit_date"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_user_habit_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_habit_date"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
