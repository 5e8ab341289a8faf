package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/elowenrae/steady/internal/models"
)

var (
	ErrInvalidMoodScore  = errors.New("mood score must be in 1..5")
	ErrMoodAlreadyLogged = errors.New("mood already logged for today")
	ErrMoodNotFound      = errors.New("no mood logged for today")
)

type MoodWriteRepository interface {
	FindByUserAndDate(userID uint, day time.Time) (models.MoodEntry, bool, error)
	ListByUser(userID uint) ([]models.MoodEntry, error)
	Create(entry *models.MoodEntry) error
	Save(entry *models.MoodEntry) error
}

type MoodSettingsReader interface {
	FindByUser(userID uint) (models.UserSettings, bool, error)
}

type LowMoodAlerter interface {
	SendLowMoodAlert(settings models.UserSettings, entry models.MoodEntry) error
}

type MoodService struct {
	moods    MoodWriteRepository
	settings MoodSettingsReader
	alerter  LowMoodAlerter
}

func NewMoodService(moods MoodWriteRepository, settings MoodSettingsReader, alerter LowMoodAlerter) *MoodService {
	return &MoodService{
		moods:    moods,
		settings: settings,
		alerter:  alerter,
	}
}

func (service *MoodService) ListMoods(userID uint) ([]models.MoodEntry, error) {
	return service.moods.ListByUser(userID)
}

func (service *MoodService) MoodForDate(userID uint, day time.Time) (models.MoodEntry, bool, error) {
	return service.moods.FindByUserAndDate(userID, DateOnlyUTC(day))
}

// LogMood records one mood entry per day. Creation is rejected when an
// entry already exists; after a successful insert the low-mood alert
// check runs against the user's settings (skipped when the settings row
// is missing).
func (service *MoodService) LogMood(userID uint, day time.Time, score int, reflection string) (models.MoodEntry, error) {
	if !models.ValidMoodScore(score) {
		return models.MoodEntry{}, ErrInvalidMoodScore
	}

	date := DateOnlyUTC(day)
	_, exists, err := service.moods.FindByUserAndDate(userID, date)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if exists {
		return models.MoodEntry{}, ErrMoodAlreadyLogged
	}

	entry := models.MoodEntry{
		UserID:     userID,
		Date:       date,
		Score:      score,
		Reflection: strings.TrimSpace(reflection),
	}
	if err := service.moods.Create(&entry); err != nil {
		return models.MoodEntry{}, err
	}

	settings, found, err := service.settings.FindByUser(userID)
	if err != nil || !found {
		return entry, nil
	}
	if err := service.alerter.SendLowMoodAlert(settings, entry); err != nil {
		log.Printf("mood: low mood alert for user %d failed: %v", userID, err)
	}
	return entry, nil
}

// UpdateTodayMood edits the existing entry for the day; unlike
// creation, updates are always allowed.
func (service *MoodService) UpdateTodayMood(userID uint, day time.Time, score int, reflection string) (models.MoodEntry, error) {
	if !models.ValidMoodScore(score) {
		return models.MoodEntry{}, ErrInvalidMoodScore
	}

	entry, exists, err := service.moods.FindByUserAndDate(userID, DateOnlyUTC(day))
	if err != nil {
		return models.MoodEntry{}, err
	}
	if !exists {
		return models.MoodEntry{}, ErrMoodNotFound
	}

	entry.Score = score
	entry.Reflection = strings.TrimSpace(reflection)
	if err := service.moods.Save(&entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}
