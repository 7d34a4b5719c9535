package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tidylist/internal/apperrors"
	"tidylist/internal/services"
)

// Locals keys under which the auth gate stores the caller's identity.
const (
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)

const sessionExpiredMessage = "session expired"

// AuthRequired is the authentication gate. It extracts the bearer token from
// the Authorization header, verifies it, and attaches the decoded claims to
// the request. A missing header, a malformed header, and a failed
// verification are indistinguishable to the caller.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Unauthenticated(sessionExpiredMessage)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.Unauthenticated(sessionExpiredMessage)
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return apperrors.Unauthenticated(sessionExpiredMessage)
		}

		userID, _ := claims["id"].(string)
		if userID == "" {
			return apperrors.Unauthenticated(sessionExpiredMessage)
		}

		c.Locals(UserIDKey, userID)
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
