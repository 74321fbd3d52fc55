package config

import (
	"os"
	"time"
)

const (
	// SiteName is the product name shown in page titles and the navbar.
	SiteName = "Wayfarer"

	// ServerRateLimitMax is the number of requests a client may make per ServerRateLimitExp window.
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute

	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second

	// PageCacheTTL bounds how long a rendered page stays cached. Content is
	// fixed at startup so this only matters for memory turnover.
	PageCacheTTL = 24 * time.Hour

	// DefaultPage is where "/" redirects.
	DefaultPage = "help-center"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"

	// ImageDir is the directory under the static root holding page images.
	ImageDir = "images"
)

// ImageVariantWidths are the WebP widths generated for raster page images.
var ImageVariantWidths = []int{480, 1200}

var (
	ServerPort = getEnv("PORT", "8080")
	BaseURL    = getEnv("BASE_URL", "https://wayfarer.travel")
	StaticDir  = getEnv("STATIC_DIR", "./static")

	// ContentDir optionally points at a directory of YAML page documents
	// that override or extend the built-in pages.
	ContentDir = getEnv("CONTENT_DIR", "")

	B2KeyID       = os.Getenv("BACKBLAZE_KEY_ID")
	B2MasterKeyID = os.Getenv("BACKBLAZE_MASTER_KEY_ID")
	B2AppKey      = os.Getenv("BACKBLAZE_APP_KEY")
	B2BucketName  = getEnv("BACKBLAZE_BUCKET_NAME", "wayfarer-site")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
