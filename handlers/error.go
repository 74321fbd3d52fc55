package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wayfarer-travel/site/ui"
)

// CustomErrorHandler renders application errors as an HTML error page.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Something went wrong on our side. Please try again later."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("[PAGES] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message))
}
