package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidAuthToken = errors.New("invalid auth token")

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) issueAuthToken(userID uint) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseAuthToken(tokenString string) (uint, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidAuthToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, errInvalidAuthToken
	}
	return claims.UserID, nil
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  time.Now().Add(authTokenTTL),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}
