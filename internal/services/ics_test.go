package services

import (
	"strings"
	"testing"
	"time"

	"github.com/elowenrae/steady/internal/models"
)

type stubActiveReminderReader struct {
	reminders []models.HabitReminder
}

func (stub *stubActiveReminderReader) ListActiveByUser(uint) ([]models.HabitReminder, error) {
	return stub.reminders, nil
}

func TestBuildICSEmitsEventPerActiveReminder(t *testing.T) {
	trigger := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	reminders := &stubActiveReminderReader{reminders: []models.HabitReminder{
		{ID: 1, UserID: 1, HabitID: 7, NextTriggerUTC: trigger, Active: true},
		{ID: 2, UserID: 1, HabitID: 8, NextTriggerUTC: trigger.Add(time.Hour), Active: true},
	}}
	habits := &stubHabitReader{habits: []models.Habit{
		{ID: 7, UserID: 1, Name: "Drink Water"},
		{ID: 8, UserID: 1, Name: "Stretch"},
	}}
	settings := &stubSettingsReader{settings: utcSettings(9), found: true}

	service := NewCalendarService(reminders, habits, settings)
	payload, err := service.BuildICS(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(payload)
	if !strings.Contains(text, "PRODID:-//Steady//Habit Reminders//EN") {
		t.Fatalf("missing product id in payload:\n%s", text)
	}
	if got := strings.Count(text, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
	if !strings.Contains(text, "SUMMARY:Reminder: Drink Water") {
		t.Fatalf("missing summary for habit:\n%s", text)
	}
	if !strings.Contains(text, "Don't forget to complete your habit: Drink Water") {
		t.Fatalf("missing description for habit:\n%s", text)
	}
	if !strings.Contains(text, "DTSTART:20250102T090000Z") {
		t.Fatalf("missing start instant:\n%s", text)
	}
	if !strings.Contains(text, "DTEND:20250102T093000Z") {
		t.Fatalf("expected 30 minute event:\n%s", text)
	}
}

func TestBuildICSSkipsRemindersForDeletedHabits(t *testing.T) {
	reminders := &stubActiveReminderReader{reminders: []models.HabitReminder{
		{ID: 1, UserID: 1, HabitID: 404, NextTriggerUTC: time.Now(), Active: true},
	}}
	service := NewCalendarService(reminders, &stubHabitReader{}, &stubSettingsReader{})

	payload, err := service.BuildICS(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(payload), "BEGIN:VEVENT") {
		t.Fatalf("expected no events for orphaned reminders:\n%s", payload)
	}
}

func TestBuildICSEmptyWithoutReminders(t *testing.T) {
	service := NewCalendarService(&stubActiveReminderReader{}, &stubHabitReader{}, &stubSettingsReader{})

	payload, err := service.BuildICS(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(payload)
	if !strings.Contains(text, "BEGIN:VCALENDAR") || strings.Contains(text, "BEGIN:VEVENT") {
		t.Fatalf("expected empty calendar, got:\n%s", text)
	}
}
