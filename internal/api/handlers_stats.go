package api

import (
	"time"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetStatsSummary returns the chart payload for the requested view.
// Unknown views fall back to weekly, mirroring the analytics service.
func (handler *Handler) GetStatsSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	view := c.Query("view", services.ViewWeekly)
	summary, err := handler.analyticsService.Summaries(user.ID, view, time.Now())
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"view":             view,
		"labels":           summary.Labels,
		"mood_averages":    summary.MoodAverages,
		"completion_rates": summary.CompletionRates,
	})
}

func (handler *Handler) GetSuggestion(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	suggestion, err := handler.suggestionService.Suggest(user.ID, time.Now())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"suggestion": suggestion})
}
