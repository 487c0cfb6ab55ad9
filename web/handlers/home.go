package handlers

import "github.com/gofiber/fiber/v2"

// Home greets API clients
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to Virtual Organizer API"})
}

// Health reports liveness
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
