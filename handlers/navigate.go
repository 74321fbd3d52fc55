package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wayfarer-travel/site/nav"
)

// HandleNavigate passes a click on a stub control to the navigation hooks.
// The response has no content so htmx leaves the page untouched.
func HandleNavigate(c *fiber.Ctx) error {
	target := nav.Target(utils.CopyString(c.Params("target")))
	if !nav.IsKnown(target) {
		return fiber.NewError(fiber.StatusNotFound, "Unknown navigation target.")
	}

	if err := navigator.OnNavigate(c.UserContext(), target); err != nil {
		log.Printf("[NAV] %s failed: %v", target, err)
		return fiber.NewError(fiber.StatusBadGateway, "That action is not available right now.")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
