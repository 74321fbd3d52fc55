package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wayfarer-travel/site/config"
	h "github.com/wayfarer-travel/site/handlers"
)

// New builds the fiber app with middleware and routes. handlers.Init must
// have been called first.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          h.CustomErrorHandler,
		ReadTimeout:           config.ServerReadTimeout,
		WriteTimeout:          config.ServerWriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))

	// Add logger middleware
	app.Use(logger.New())

	// Static files (page images, robots.txt)
	app.Static("/", config.StaticDir)

	app.Get("/", h.HandleHome)
	app.Get("/sitemap.xml", h.HandleSitemap)
	app.Get("/health", h.HandleHealth)

	// Navigation placeholders posted by stub controls
	app.Post("/navigate/:target", h.HandleNavigate)

	// Informational pages from the page schema
	app.Get("/:page", h.HandlePage)

	return app
}

// Start serves the app on config.ServerPort.
func Start() error {
	app := New()
	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	return app.Listen(":" + config.ServerPort)
}
