package api

import (
	"errors"
	"time"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

type moodInput struct {
	Score      int    `json:"score"`
	Reflection string `json:"reflection"`
}

func (handler *Handler) GetMoods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	entries, err := handler.moodService.ListMoods(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"moods": entries})
}

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := handler.moodService.LogMood(user.ID, time.Now(), input.Score, input.Reflection)
	switch {
	case errors.Is(err, services.ErrInvalidMoodScore):
		return badRequest(c, "mood score must be between 1 and 5")
	case errors.Is(err, services.ErrMoodAlreadyLogged):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "mood already logged for today"})
	case err != nil:
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateTodayMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := handler.moodService.UpdateTodayMood(user.ID, time.Now(), input.Score, input.Reflection)
	switch {
	case errors.Is(err, services.ErrInvalidMoodScore):
		return badRequest(c, "mood score must be between 1 and 5")
	case errors.Is(err, services.ErrMoodNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no mood logged for today"})
	case err != nil:
		return internalError(c)
	}

	return c.JSON(entry)
}
