package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestCriticalFlowSmoke(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "smoke@example.com", "StrongPass1")

	// Create a habit; registration already seeded default settings, so
	// the write path also provisions a reminder row.
	createResponse := jsonRequest(t, app, http.MethodPost, "/api/habits", authCookie, map[string]any{
		"name":        "Morning Run",
		"description": "around the block",
		"periodicity": "daily",
	})
	expectStatus(t, createResponse, http.StatusCreated)
	created := decodeJSONBody(t, createResponse)
	habitID, ok := created["ID"].(float64)
	if !ok || habitID == 0 {
		t.Fatalf("expected created habit id, got %+v", created)
	}

	listResponse := jsonRequest(t, app, http.MethodGet, "/api/habits", authCookie, nil)
	expectStatus(t, listResponse, http.StatusOK)
	listed := decodeJSONBody(t, listResponse)
	habits, ok := listed["habits"].([]any)
	if !ok || len(habits) != 1 {
		t.Fatalf("expected one habit, got %+v", listed)
	}

	completeResponse := jsonRequest(t, app, http.MethodPost, "/api/completions/1", authCookie, map[string]any{
		"completed": true,
	})
	expectStatus(t, completeResponse, http.StatusOK)
	completion := decodeJSONBody(t, completeResponse)
	if done, _ := completion["Completed"].(bool); !done {
		t.Fatalf("expected completion marked done, got %+v", completion)
	}

	dashboardResponse := jsonRequest(t, app, http.MethodGet, "/api/dashboard", authCookie, nil)
	expectStatus(t, dashboardResponse, http.StatusOK)
	dashboard := decodeJSONBody(t, dashboardResponse)
	if dashboard["done"] != float64(1) || dashboard["total"] != float64(1) {
		t.Fatalf("expected 1/1 habits done, got %+v", dashboard)
	}
	if dashboard["mood_logged"] != false {
		t.Fatalf("expected no mood logged yet, got %+v", dashboard)
	}

	moodResponse := jsonRequest(t, app, http.MethodPost, "/api/moods", authCookie, map[string]any{
		"score":      4,
		"reflection": "went well",
	})
	expectStatus(t, moodResponse, http.StatusCreated)

	duplicateResponse := jsonRequest(t, app, http.MethodPost, "/api/moods", authCookie, map[string]any{
		"score": 5,
	})
	expectStatus(t, duplicateResponse, http.StatusConflict)
	duplicateResponse.Body.Close()

	updateMoodResponse := jsonRequest(t, app, http.MethodPut, "/api/moods/today", authCookie, map[string]any{
		"score":      5,
		"reflection": "got even better",
	})
	expectStatus(t, updateMoodResponse, http.StatusOK)
	updatedMood := decodeJSONBody(t, updateMoodResponse)
	if updatedMood["Score"] != float64(5) {
		t.Fatalf("expected updated score 5, got %+v", updatedMood)
	}

	streakResponse := jsonRequest(t, app, http.MethodGet, "/api/habits/1/streak", authCookie, nil)
	expectStatus(t, streakResponse, http.StatusOK)
	streak := decodeJSONBody(t, streakResponse)
	if streak["habit"] != "Morning Run" {
		t.Fatalf("expected streak payload for the habit, got %+v", streak)
	}
	if streak["longest_streak"] != float64(1) || streak["current_streak"] != float64(1) {
		t.Fatalf("expected 1-day streaks after today's completion, got %+v", streak)
	}

	summaryResponse := jsonRequest(t, app, http.MethodGet, "/api/stats/summary?view=weekly", authCookie, nil)
	expectStatus(t, summaryResponse, http.StatusOK)
	summary := decodeJSONBody(t, summaryResponse)
	labels, ok := summary["labels"].([]any)
	if !ok || len(labels) != 7 {
		t.Fatalf("expected 7 weekday labels, got %+v", summary)
	}

	suggestionResponse := jsonRequest(t, app, http.MethodGet, "/api/stats/suggestion", authCookie, nil)
	expectStatus(t, suggestionResponse, http.StatusOK)
	suggestion := decodeJSONBody(t, suggestionResponse)
	if text, _ := suggestion["suggestion"].(string); text == "" {
		t.Fatalf("expected a suggestion line, got %+v", suggestion)
	}

	settingsResponse := jsonRequest(t, app, http.MethodPut, "/api/settings", authCookie, map[string]any{
		"timezone":           "Europe/Berlin",
		"reminder_hour":      7,
		"low_mood_threshold": 2,
		"notify_low_mood":    true,
	})
	expectStatus(t, settingsResponse, http.StatusOK)
	settings := decodeJSONBody(t, settingsResponse)
	if settings["timezone"] != "Europe/Berlin" || settings["reminder_hour"] != float64(7) {
		t.Fatalf("unexpected settings payload: %+v", settings)
	}

	calendarResponse := jsonRequest(t, app, http.MethodGet, "/api/calendar.ics", authCookie, nil)
	expectStatus(t, calendarResponse, http.StatusOK)
	if got := calendarResponse.Header.Get("Content-Type"); !strings.Contains(got, "text/calendar") {
		t.Fatalf("expected text/calendar content type, got %q", got)
	}
	calendarBody, err := io.ReadAll(calendarResponse.Body)
	calendarResponse.Body.Close()
	if err != nil {
		t.Fatalf("read calendar body: %v", err)
	}
	rendered := string(calendarBody)
	if !strings.Contains(rendered, "BEGIN:VCALENDAR") {
		t.Fatalf("expected icalendar payload, got %q", rendered)
	}
	if !strings.Contains(rendered, "SUMMARY:Reminder: Morning Run") {
		t.Fatalf("expected reminder event for the habit, got %q", rendered)
	}
}

func TestLowMoodFlowCreatesNotification(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := registerAndExtractAuthCookie(t, app, "lowmood@example.com", "StrongPass1")

	moodResponse := jsonRequest(t, app, http.MethodPost, "/api/moods", authCookie, map[string]any{
		"score":      1,
		"reflection": "rough day",
	})
	expectStatus(t, moodResponse, http.StatusCreated)
	moodResponse.Body.Close()

	listResponse := jsonRequest(t, app, http.MethodGet, "/api/notifications", authCookie, nil)
	expectStatus(t, listResponse, http.StatusOK)
	listed := decodeJSONBody(t, listResponse)

	notifications, ok := listed["notifications"].([]any)
	if !ok || len(notifications) != 1 {
		t.Fatalf("expected one low mood notification, got %+v", listed)
	}
	if listed["unread"] != float64(1) {
		t.Fatalf("expected one unread notification, got %+v", listed)
	}
	first, ok := notifications[0].(map[string]any)
	if !ok {
		t.Fatalf("unexpected notification payload: %+v", notifications[0])
	}
	message, _ := first["Message"].(string)
	if !strings.Contains(message, "Your mood today was 1") {
		t.Fatalf("unexpected alert message: %q", message)
	}

	markResponse := jsonRequest(t, app, http.MethodPost, "/api/notifications/1/read", authCookie, nil)
	expectStatus(t, markResponse, http.StatusOK)
	markResponse.Body.Close()

	afterResponse := jsonRequest(t, app, http.MethodGet, "/api/notifications", authCookie, nil)
	expectStatus(t, afterResponse, http.StatusOK)
	after := decodeJSONBody(t, afterResponse)
	if after["unread"] != float64(0) {
		t.Fatalf("expected zero unread after mark read, got %+v", after)
	}
}
