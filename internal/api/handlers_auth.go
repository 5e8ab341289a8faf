package api

import (
	"errors"

	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.DisplayName)
	switch {
	case errors.Is(err, services.ErrEmailRequired):
		return badRequest(c, "email and password required")
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	case err != nil:
		return internalError(c)
	}

	token, err := handler.issueAuthToken(user.ID)
	if err != nil {
		return internalError(c)
	}
	handler.setAuthCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}
	if err != nil {
		return internalError(c)
	}

	token, err := handler.issueAuthToken(user.ID)
	if err != nil {
		return internalError(c)
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "logged out"})
}
