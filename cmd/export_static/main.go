package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/export"
	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/publish"
)

func main() {
	var (
		out     = flag.String("out", "dist", "Output directory")
		static  = flag.String("static", config.StaticDir, "Static directory copied into the export")
		content = flag.String("content", config.ContentDir, "Directory of YAML page documents (optional)")
		baseURL = flag.String("base-url", config.BaseURL, "Base URL used in sitemap.xml")
		pub     = flag.Bool("publish", false, "Upload the export to the configured B2 bucket")
		prefix  = flag.String("prefix", "", "Key prefix inside the bucket")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry, err := page.LoadRegistry(*content)
	if err != nil {
		log.Fatalf("Failed to load page content: %v", err)
	}

	opts := export.Options{
		Registry: registry,
		OutDir:   *out,
		BaseURL:  *baseURL,
		Widths:   config.ImageVariantWidths,
	}
	if _, err := os.Stat(*static); err == nil {
		opts.Static = os.DirFS(*static)
	} else {
		log.Printf("[EXPORT] static directory %s not found, exporting pages only", *static)
	}

	res, err := export.Site(ctx, opts)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Exported %v to %s", res.Pages, *out)

	if !*pub {
		return
	}

	bucket, err := publish.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to B2: %v", err)
	}
	n, err := publish.Upload(ctx, bucket, os.DirFS(*out), *prefix)
	if err != nil {
		log.Fatalf("Publish failed after %d files: %v", n, err)
	}
	log.Printf("Published %d files to %s", n, config.B2BucketName)
}
