package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	tokenString := c.Cookies(authCookieName)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	userID, err := handler.parseAuthToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
