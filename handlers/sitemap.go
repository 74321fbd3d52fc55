package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/sitemap"
)

func HandleSitemap(c *fiber.Ctx) error {
	data, err := sitemap.Marshal(sitemap.Build(registry, config.BaseURL, loadedAt.Format("2006-01-02")))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}
