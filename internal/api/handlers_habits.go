package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

type habitInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Periodicity string `json:"periodicity"`
}

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	habits, err := handler.habitService.ListHabits(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"habits": habits})
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	habit, err := handler.habitService.CreateHabit(user.ID, input.Name, input.Description, input.Periodicity)
	switch {
	case errors.Is(err, services.ErrHabitNameRequired), errors.Is(err, services.ErrInvalidPeriodicity):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrHabitLimitReached):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "limit of 5 habits reached"})
	case errors.Is(err, services.ErrHabitNameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "habit name already in use"})
	case err != nil:
		return internalError(c)
	}

	handler.rescheduleReminders(user.ID)
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	habitID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	habit, err := handler.habitService.UpdateHabit(user.ID, habitID, input.Name, input.Description, input.Periodicity)
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "habit not found"})
	case errors.Is(err, services.ErrHabitNameRequired), errors.Is(err, services.ErrInvalidPeriodicity):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrHabitNameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "habit name already in use"})
	case err != nil:
		return internalError(c)
	}

	handler.rescheduleReminders(user.ID)
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	habitID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	if err := handler.habitService.DeleteHabit(user.ID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "habit not found"})
		}
		return internalError(c)
	}

	// Deleting a habit still fans out to the user's remaining habits so
	// their reminder rows reflect current settings.
	handler.rescheduleReminders(user.ID)
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) GetHabitStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	habitID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid habit id")
	}

	habit, err := handler.habitService.GetHabit(user.ID, habitID)
	if errors.Is(err, services.ErrHabitNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "habit not found"})
	}
	if err != nil {
		return internalError(c)
	}

	longest, err := handler.analyticsService.LongestStreak(habit)
	if err != nil {
		return internalError(c)
	}
	current, err := handler.analyticsService.CurrentStreak(user.ID, habit.ID, time.Now())
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"habit":          habit.Name,
		"periodicity":    habit.Periodicity,
		"longest_streak": longest,
		"current_streak": current,
	})
}

// rescheduleReminders is the explicit fan-out edge after every habit or
// settings mutation. Failures are logged only: reminder rows self-heal
// on the nightly rebuild.
func (handler *Handler) rescheduleReminders(userID uint) {
	if err := handler.scheduleService.RescheduleAllForUser(userID, time.Now().UTC()); err != nil {
		log.Printf("api: reschedule reminders for user %d failed: %v", userID, err)
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}
