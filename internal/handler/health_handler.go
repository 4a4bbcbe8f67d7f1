package handler

import (
	"trivia-api/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Liveness answers the root probe with an empty object.
func Liveness(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.EmptyResponse{})
}
