package main

import (
	"log"
	"os"

	"github.com/wayfarer-travel/site/assets"
	"github.com/wayfarer-travel/site/config"
	h "github.com/wayfarer-travel/site/handlers"
	"github.com/wayfarer-travel/site/nav"
	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/server"
	"github.com/wayfarer-travel/site/ui"
)

func main() {
	// Load the page schema: built-in pages plus any YAML overrides
	registry, err := page.LoadRegistry(config.ContentDir)
	if err != nil {
		log.Fatalf("error loading page content: %v", err)
	}
	log.Printf("[PAGES] loaded %d pages: %v", registry.Len(), registry.IDs())

	// Index page images so the renderer can size them
	manifest, err := assets.Scan(os.DirFS(config.StaticDir), config.ImageDir)
	if err != nil {
		log.Fatalf("Failed to scan image assets: %v", err)
	}
	log.Printf("[ASSETS] indexed %d images: %v", manifest.Len(), manifest.Names())

	// Navigation placeholders stay no-ops until a router registers handlers
	hooks := nav.NewHooks()

	if err := h.Init(h.Options{
		Registry:  registry,
		Renderer:  ui.NewRenderer(manifest),
		Navigator: hooks,
	}); err != nil {
		log.Fatalf("Failed to initialize handlers: %v", err)
	}

	log.Fatal(server.Start())
}
