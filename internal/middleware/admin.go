package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/englishroom/portal-api/internal/utils"
)

// SessionVerifier checks a bearer token against the live admin sessions.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// BearerToken extracts the token from the Authorization header, or "" when absent.
func BearerToken(c *fiber.Ctx) string {
	authorization := c.Get("Authorization")
	const bearer = "bearer "
	if len(authorization) < len(bearer) || !strings.EqualFold(authorization[:len(bearer)], bearer) {
		return ""
	}
	return strings.TrimSpace(authorization[len(bearer):])
}

// AdminProtected guards write endpoints behind a live admin session.
func AdminProtected(sessions SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		sessionID, err := sessions.Verify(c.Context(), token)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid or revoked session")
		}

		c.Locals("session_id", sessionID)

		return c.Next()
	}
}
