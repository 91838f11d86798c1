package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route to one marketplace role. Roles are flat: a
// customer is never a contractor and vice versa.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
