package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Settings      *SettingsRepository
	Habits        *HabitRepository
	Completions   *CompletionRepository
	Moods         *MoodRepository
	Reminders     *ReminderRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Settings:      NewSettingsRepository(database),
		Habits:        NewHabitRepository(database),
		Completions:   NewCompletionRepository(database),
		Moods:         NewMoodRepository(database),
		Reminders:     NewReminderRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
