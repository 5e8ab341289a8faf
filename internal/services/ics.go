package services

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/elowenrae/steady/internal/models"
)

const (
	calendarProductID     = "-//Steady//Habit Reminders//EN"
	calendarEventDuration = 30 * time.Minute
)

type CalendarReminderReader interface {
	ListActiveByUser(userID uint) ([]models.HabitReminder, error)
}

type CalendarHabitReader interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
}

type CalendarSettingsReader interface {
	FindByUser(userID uint) (models.UserSettings, bool, error)
}

// CalendarService renders a user's active reminders as an iCalendar
// payload. Pure formatting over scheduler output; no scheduling logic.
type CalendarService struct {
	reminders CalendarReminderReader
	habits    CalendarHabitReader
	settings  CalendarSettingsReader
}

func NewCalendarService(reminders CalendarReminderReader, habits CalendarHabitReader, settings CalendarSettingsReader) *CalendarService {
	return &CalendarService{
		reminders: reminders,
		habits:    habits,
		settings:  settings,
	}
}

// BuildICS emits one 30-minute event per active reminder. Event times
// are the reminder's trigger instant viewed in the owner's timezone
// (UTC when the settings row is missing or names an unknown zone);
// the serialized form uses the equivalent UTC instants.
func (service *CalendarService) BuildICS(userID uint) ([]byte, error) {
	location := time.UTC
	if settings, found, err := service.settings.FindByUser(userID); err != nil {
		return nil, err
	} else if found {
		location = LoadLocationOrUTC(settings.Timezone)
	}

	reminders, err := service.reminders.ListActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	calendar := ics.NewCalendar()
	calendar.SetProductId(calendarProductID)
	calendar.SetVersion("2.0")

	for _, reminder := range reminders {
		habit, found, err := service.habits.FindByIDForUser(reminder.HabitID, userID)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		start := reminder.NextTriggerUTC.In(location)
		event := calendar.AddEvent(fmt.Sprintf("reminder-%d@steady", reminder.ID))
		event.SetSummary(fmt.Sprintf("Reminder: %s", habit.Name))
		event.SetDescription(fmt.Sprintf("Don't forget to complete your habit: %s", habit.Name))
		event.SetStartAt(start)
		event.SetEndAt(start.Add(calendarEventDuration))
	}

	return []byte(calendar.Serialize()), nil
}
