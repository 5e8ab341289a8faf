package api

import (
	"errors"
	"time"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

type completionInput struct {
	Completed bool `json:"completed"`
}

// SetCompletion checks or unchecks today's box for the habit in the
// path parameter.
func (handler *Handler) SetCompletion(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	habitID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	if _, err := handler.habitService.GetHabit(user.ID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "habit not found"})
		}
		return internalError(c)
	}

	input := completionInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	completion, err := handler.dashboardService.SetCompletion(user.ID, habitID, time.Now(), input.Completed)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(completion)
}
