package api

import "github.com/gofiber/fiber/v2"

const notificationListLimit = 50

func (handler *Handler) GetNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	notifications, err := handler.repositories.Notifications.ListByUser(user.ID, notificationListLimit)
	if err != nil {
		return internalError(c)
	}
	unread, err := handler.repositories.Notifications.CountUnread(user.ID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unread":        unread,
	})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	notificationID, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := handler.repositories.Notifications.MarkRead(notificationID, user.ID); err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"status": "read"})
}
