package api

import (
	"time"

	"github.com/elowenrae/steady/internal/db"
	"github.com/elowenrae/steady/internal/models"
	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	authCookieName = "steady_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories *db.Repositories

	authService       *services.AuthService
	habitService      *services.HabitService
	moodService       *services.MoodService
	dashboardService  *services.DashboardService
	analyticsService  *services.AnalyticsService
	suggestionService *services.SuggestionService
	scheduleService   *services.ScheduleService
	settingsService   *services.SettingsService
	notifyService     *services.NotifyService
	calendarService   *services.CalendarService
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
