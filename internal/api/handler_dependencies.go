package api

import (
	"github.com/elowenrae/steady/internal/db"
	"github.com/elowenrae/steady/internal/services"
	"gorm.io/gorm"
)

// NewHandler wires repositories and services around a database handle.
// The sentiment analyzer and mailer are constructed by the caller so
// their lifecycles stay outside the handler.
func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, analyzer services.SentimentAnalyzer, mailer services.Mailer) *Handler {
	repositories := db.NewRepositories(database)

	notifyService := services.NewNotifyService(repositories.Notifications, repositories.Users, mailer)
	scheduleService := services.NewScheduleService(repositories.Settings, repositories.Habits, repositories.Reminders, notifyService)

	return &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		repositories: repositories,

		authService:       services.NewAuthService(repositories.Users, repositories.Settings),
		habitService:      services.NewHabitService(repositories.Habits),
		moodService:       services.NewMoodService(repositories.Moods, repositories.Settings, notifyService),
		dashboardService:  services.NewDashboardService(repositories.Habits, repositories.Completions),
		analyticsService:  services.NewAnalyticsService(repositories.Completions, repositories.Moods, repositories.Habits),
		suggestionService: services.NewSuggestionService(repositories.Moods, analyzer),
		scheduleService:   scheduleService,
		settingsService:   services.NewSettingsService(repositories.Settings),
		notifyService:     notifyService,
		calendarService:   services.NewCalendarService(repositories.Reminders, repositories.Habits, repositories.Settings),
	}
}

// ScheduleService exposes the scheduler for the cron runner.
func (handler *Handler) ScheduleService() *services.ScheduleService {
	return handler.scheduleService
}

// Repositories exposes the repository aggregate for wiring (cron user
// listing, tests).
func (handler *Handler) Repositories() *db.Repositories {
	return handler.repositories
}
