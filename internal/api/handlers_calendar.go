package api

import "github.com/gofiber/fiber/v2"

// ExportCalendar serves the user's active reminders as an iCalendar
// feed.
func (handler *Handler) ExportCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	payload, err := handler.calendarService.BuildICS(user.ID)
	if err != nil {
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="steady-reminders.ics"`)
	return c.Send(payload)
}
