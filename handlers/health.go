package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
		"pages":  registry.Len(),
		"cache":  pageCache.Stats(),
	}
	if registry.Len() == 0 {
		health["status"] = "unhealthy"
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(health)
}
