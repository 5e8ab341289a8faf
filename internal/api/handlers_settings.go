package api

import (
	"errors"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

type settingsInput struct {
	Timezone         string `json:"timezone"`
	ReminderHour     int    `json:"reminder_hour"`
	LowMoodThreshold int    `json:"low_mood_threshold"`
	NotifyLowMood    bool   `json:"notify_low_mood"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	settings, err := handler.settingsService.SettingsForUser(user.ID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"timezone":           settings.Timezone,
		"reminder_hour":      settings.ReminderHour,
		"low_mood_threshold": settings.LowMoodThreshold,
		"notify_low_mood":    settings.NotifyLowMood,
	})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	settings, err := handler.settingsService.UpdateSettings(user.ID, input.Timezone, input.ReminderHour, input.LowMoodThreshold, input.NotifyLowMood)
	switch {
	case errors.Is(err, services.ErrInvalidHour):
		return badRequest(c, "reminder hour must be between 0 and 23")
	case errors.Is(err, services.ErrInvalidThreshold):
		return badRequest(c, "low mood threshold must be between 1 and 5")
	case errors.Is(err, services.ErrUnknownTimezone):
		return badRequest(c, "unknown timezone name")
	case err != nil:
		return internalError(c)
	}

	// Timezone or hour changes shift every trigger instant.
	handler.rescheduleReminders(user.ID)

	return c.JSON(fiber.Map{
		"timezone":           settings.Timezone,
		"reminder_hour":      settings.ReminderHour,
		"low_mood_threshold": settings.LowMoodThreshold,
		"notify_low_mood":    settings.NotifyLowMood,
	})
}
