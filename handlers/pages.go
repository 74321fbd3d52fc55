package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/wayfarer-travel/site/config"
)

// HandleHome redirects to the default informational page.
func HandleHome(c *fiber.Ctx) error {
	return c.Redirect("/"+config.DefaultPage, fiber.StatusFound)
}

// HandlePage serves a page from the schema by its identifier.
func HandlePage(c *fiber.Ctx) error {
	p, err := renderPage(utils.CopyString(c.Params("page")))
	if errors.Is(err, errPageNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "We couldn't find that page.")
	}
	if err != nil {
		return err
	}
	return send(c, p)
}
