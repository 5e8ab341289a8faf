package services

import (
	"errors"
	"time"

	"github.com/elowenrae/steady/internal/models"
)

var (
	ErrUnknownTimezone  = errors.New("unknown timezone name")
	ErrInvalidThreshold = errors.New("low mood threshold must be in 1..5")
)

type SettingsRepository interface {
	FindByUser(userID uint) (models.UserSettings, bool, error)
	Create(settings *models.UserSettings) error
	Save(settings *models.UserSettings) error
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// SettingsForUser returns the stored settings, falling back to defaults
// for users whose row is missing (read path only; nothing is created).
func (service *SettingsService) SettingsForUser(userID uint) (models.UserSettings, error) {
	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.UserSettings{}, err
	}
	if !found {
		return models.DefaultUserSettings(userID), nil
	}
	return settings, nil
}

// UpdateSettings validates and persists preference changes. Unlike the
// scheduling core, which degrades unknown timezones to UTC, the write
// path rejects them outright so typos never reach storage.
func (service *SettingsService) UpdateSettings(userID uint, timezone string, reminderHour int, lowMoodThreshold int, notifyLowMood bool) (models.UserSettings, error) {
	if reminderHour < 0 || reminderHour > 23 {
		return models.UserSettings{}, ErrInvalidHour
	}
	if lowMoodThreshold < models.MinMoodScore || lowMoodThreshold > models.MaxMoodScore {
		return models.UserSettings{}, ErrInvalidThreshold
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return models.UserSettings{}, ErrUnknownTimezone
	}

	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return models.UserSettings{}, err
	}
	if !found {
		settings = models.DefaultUserSettings(userID)
	}

	settings.Timezone = timezone
	settings.ReminderHour = reminderHour
	settings.LowMoodThreshold = lowMoodThreshold
	settings.NotifyLowMood = notifyLowMood

	if !found {
		if err := service.settings.Create(&settings); err != nil {
			return models.UserSettings{}, err
		}
		return settings, nil
	}
	if err := service.settings.Save(&settings); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}
