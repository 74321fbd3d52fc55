package handlers

import (
	"errors"
	"time"

	"github.com/wayfarer-travel/site/cache"
	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/nav"
	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/ui"
)

// Options are the collaborators the handlers serve pages from.
type Options struct {
	Registry  *page.Registry
	Renderer  *ui.Renderer
	Navigator nav.Navigator
}

var (
	registry  *page.Registry
	renderer  *ui.Renderer
	navigator nav.Navigator
	pageCache *cache.Cache[*renderedPage]

	// loadedAt is the sitemap lastmod; page content is fixed once loaded.
	loadedAt time.Time
)

// Init sets up the handlers. It must be called before the server starts.
func Init(opts Options) error {
	if opts.Registry == nil {
		return errors.New("handlers: registry is required")
	}
	if opts.Renderer == nil {
		opts.Renderer = ui.NewRenderer(nil)
	}
	if opts.Navigator == nil {
		opts.Navigator = nav.NewHooks()
	}

	c, err := cache.New[*renderedPage]("Page Cache", config.PageCacheTTL, func(p *renderedPage) int64 {
		return p.cost()
	})
	if err != nil {
		return err
	}
	if pageCache != nil {
		pageCache.Close()
	}

	registry = opts.Registry
	renderer = opts.Renderer
	navigator = opts.Navigator
	pageCache = c
	loadedAt = time.Now().UTC()
	return nil
}
