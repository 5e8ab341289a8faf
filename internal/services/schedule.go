package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/elowenrae/steady/internal/models"
)

var (
	ErrInvalidHour      = errors.New("reminder hour must be in 0..23")
	ErrRescheduleFailed = errors.New("reschedule reminder failed")
)

// reminderFallbackInterval keeps the cadence of a reminder whose owner
// settings disappeared between scheduling and delivery.
const reminderFallbackInterval = 24 * time.Hour

type ScheduleSettingsReader interface {
	FindByUser(userID uint) (models.UserSettings, bool, error)
}

type ScheduleHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
}

type ScheduleReminderRepository interface {
	FindByUserAndHabit(userID uint, habitID uint) (models.HabitReminder, bool, error)
	Create(reminder *models.HabitReminder) error
	Save(reminder *models.HabitReminder) error
	ListDue(reference time.Time) ([]models.HabitReminder, error)
	UpdateNextTrigger(reminderID uint, next time.Time) error
	Deactivate(reminderID uint) error
}

type ReminderNotifier interface {
	Notify(userID uint, message string, category string, sendEmail bool, subject string) error
}

// ScheduleService maintains HabitReminder rows and delivers due
// reminders. There is no lock around "list due, then reschedule", so
// two concurrent schedulers can deliver the same occurrence twice:
// delivery is at-least-once, not exactly-once.
type ScheduleService struct {
	settings  ScheduleSettingsReader
	habits    ScheduleHabitReader
	reminders ScheduleReminderRepository
	notifier  ReminderNotifier
}

func NewScheduleService(settings ScheduleSettingsReader, habits ScheduleHabitReader, reminders ScheduleReminderRepository, notifier ReminderNotifier) *ScheduleService {
	return &ScheduleService{
		settings:  settings,
		habits:    habits,
		reminders: reminders,
		notifier:  notifier,
	}
}

// ComputeNextTrigger returns the next UTC instant at which the owner's
// local wall clock reads ReminderHour:00. If that time has already
// passed on the reference's local date, the candidate moves to the same
// hour one calendar day later.
//
// Around a DST transition the candidate wall time may not exist (or may
// exist twice); time.Date resolves both cases deterministically by
// normalizing to a valid instant in the location.
func (service *ScheduleService) ComputeNextTrigger(settings models.UserSettings, reference time.Time) (time.Time, error) {
	if settings.ReminderHour < 0 || settings.ReminderHour > 23 {
		return time.Time{}, ErrInvalidHour
	}

	location := LoadLocationOrUTC(settings.Timezone)
	localNow := reference.In(location)
	candidate := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), settings.ReminderHour, 0, 0, 0, location)
	if !candidate.After(localNow) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate.UTC(), nil
}

// RescheduleHabit upserts the reminder row for one habit. Repeated
// calls with unchanged settings recompute the same or a later instant.
func (service *ScheduleService) RescheduleHabit(userID uint, habitID uint, settings models.UserSettings, reference time.Time) (models.HabitReminder, error) {
	next, err := service.ComputeNextTrigger(settings, reference)
	if err != nil {
		return models.HabitReminder{}, err
	}

	reminder, found, err := service.reminders.FindByUserAndHabit(userID, habitID)
	if err != nil {
		return models.HabitReminder{}, fmt.Errorf("%w: %v", ErrRescheduleFailed, err)
	}

	if found {
		reminder.NextTriggerUTC = next
		reminder.Active = true
		if err := service.reminders.Save(&reminder); err != nil {
			return models.HabitReminder{}, fmt.Errorf("%w: %v", ErrRescheduleFailed, err)
		}
		return reminder, nil
	}

	reminder = models.HabitReminder{
		UserID:         userID,
		HabitID:        habitID,
		NextTriggerUTC: next,
		Active:         true,
	}
	if err := service.reminders.Create(&reminder); err != nil {
		return models.HabitReminder{}, fmt.Errorf("%w: %v", ErrRescheduleFailed, err)
	}
	return reminder, nil
}

// RescheduleAllForUser recomputes reminder rows for every habit the
// user owns. A user without a settings row is skipped silently: the row
// may have been deleted concurrently, and the next pass self-heals.
func (service *ScheduleService) RescheduleAllForUser(userID uint, reference time.Time) error {
	settings, found, err := service.settings.FindByUser(userID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if _, err := service.RescheduleHabit(userID, habit.ID, settings, reference); err != nil {
			return err
		}
	}
	return nil
}

// ProcessDueReminders delivers every active reminder whose trigger is
// at or before the reference instant, then advances each to the next
// occurrence. Returns the number of reminders delivered.
func (service *ScheduleService) ProcessDueReminders(reference time.Time) (int, error) {
	due, err := service.reminders.ListDue(reference)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, reminder := range due {
		habit, found, err := service.habits.FindByIDForUser(reminder.HabitID, reminder.UserID)
		if err != nil {
			return sent, err
		}
		if !found {
			// Habit deleted out from under the reminder; retire the row.
			if err := service.reminders.Deactivate(reminder.ID); err != nil {
				return sent, err
			}
			continue
		}

		message := fmt.Sprintf("Reminder: '%s' - a tiny step today goes a long way.", habit.Name)
		if err := service.notifier.Notify(reminder.UserID, message, models.NotificationCategoryInfo, true, "Habit Reminder"); err != nil {
			log.Printf("scheduler: notify user %d failed: %v", reminder.UserID, err)
		} else {
			sent++
		}

		next := reference.Add(reminderFallbackInterval)
		settings, found, err := service.settings.FindByUser(reminder.UserID)
		if err != nil {
			return sent, err
		}
		if found {
			computed, err := service.ComputeNextTrigger(settings, reference)
			if err == nil {
				next = computed
			}
		}

		if err := service.reminders.UpdateNextTrigger(reminder.ID, next); err != nil {
			return sent, err
		}
	}
	return sent, nil
}
