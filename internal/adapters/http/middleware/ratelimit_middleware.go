package middleware

import (
	"fmt"

	"loanguard/internal/pkg/ratelimit"
	"loanguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RateLimitMiddleware throttles a route with the given window limiter.
// The limiter is global across all callers; the check happens before the
// handler so a rejected call has no side effects.
func RateLimitMiddleware(limiter *ratelimit.Limiter) fiber.Handler {
	message := fmt.Sprintf(
		"Rate-limit reached. The API call frequency is %d per %d seconds.",
		limiter.MaxCalls(),
		int(limiter.Window().Seconds()),
	)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return response.TooManyRequests(c, message)
		}
		return c.Next()
	}
}
