package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns today's habits with their completion rows
// (lazily created), today's mood if logged, and a suggestion line.
func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	now := time.Now()

	habits, err := handler.habitService.ListHabits(user.ID)
	if err != nil {
		return internalError(c)
	}

	completions, err := handler.dashboardService.EnsureCompletionsForDate(user.ID, now)
	if err != nil {
		return internalError(c)
	}

	mood, moodLogged, err := handler.moodService.MoodForDate(user.ID, now)
	if err != nil {
		return internalError(c)
	}

	suggestion, err := handler.suggestionService.Suggest(user.ID, now)
	if err != nil {
		// Suggestions are decoration; the dashboard still renders.
		log.Printf("api: suggestion for user %d failed: %v", user.ID, err)
		suggestion = ""
	}

	done := 0
	for _, completion := range completions {
		if completion.Completed {
			done++
		}
	}

	payload := fiber.Map{
		"habits":      habits,
		"completions": completions,
		"done":        done,
		"total":       len(completions),
		"mood_logged": moodLogged,
		"suggestion":  suggestion,
	}
	if moodLogged {
		payload["mood"] = mood
	}
	return c.JSON(payload)
}
