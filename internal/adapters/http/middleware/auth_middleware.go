package middleware

import (
	"errors"
	"strings"

	"loanguard/internal/core/domain"
	"loanguard/internal/core/services"
	"loanguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards a route with bearer token authentication. The
// token is validated and its subject is re-checked against the credential
// store before the request reaches the handler.
func AuthMiddleware(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		username, err := authService.CheckCredentials(c.Context(), accessToken)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				return response.Unauthorized(c, "Access token expired")
			case errors.Is(err, domain.ErrTokenInvalid):
				return response.Unauthorized(c, "Could not validate credentials")
			default:
				// A store failure during the subject re-check is an
				// infrastructure problem, not a bad credential.
				return response.InternalServerError(c, "Failed to validate credentials")
			}
		}

		c.Locals("username", username)
		return c.Next()
	}
}
