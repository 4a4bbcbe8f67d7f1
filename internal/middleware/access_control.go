package middleware

import "github.com/gofiber/fiber/v2"

const (
	allowedHeaders = "Content-Type,Authorization"
	allowedMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// AccessControl stamps the cross-origin allow lists on every response,
// including error responses written by the error handler.
func AccessControl() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowedHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowedMethods)
		return c.Next()
	}
}
