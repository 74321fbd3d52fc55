package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/sitemap"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestSite(t *testing.T) {
	out := t.TempDir()
	static := fstest.MapFS{
		"robots.txt":                {Data: []byte("User-agent: *\n")},
		"images/trust-verified.png": {Data: pngBytes(t, 64, 32)},
		"images/notes.txt":          {Data: []byte("not an image")},
	}

	res, err := Site(context.Background(), Options{
		Registry: page.DefaultRegistry(),
		Static:   static,
		OutDir:   out,
		BaseURL:  "https://example.com",
		Widths:   []int{16, 32, 128},
		Now:      fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"help-center", "privacy-policy", "trust-safety"}, res.Pages)
	assert.Equal(t, 3, res.Files)
	assert.Equal(t, 2, res.Variants)

	for _, id := range res.Pages {
		assert.FileExists(t, filepath.Join(out, id, "index.html"))
	}
	assert.FileExists(t, filepath.Join(out, "robots.txt"))
	assert.FileExists(t, filepath.Join(out, "images", "trust-verified-16w.webp"))
	assert.FileExists(t, filepath.Join(out, "images", "trust-verified-32w.webp"))
	assert.NoFileExists(t, filepath.Join(out, "images", "trust-verified-128w.webp"))
}

func TestSitePagesUseVariants(t *testing.T) {
	out := t.TempDir()
	_, err := Site(context.Background(), Options{
		Registry: page.DefaultRegistry(),
		Static:   fstest.MapFS{"images/trust-verified.png": {Data: pngBytes(t, 64, 32)}},
		OutDir:   out,
		Widths:   []int{16},
		Now:      fixedNow,
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(out, "trust-safety", "index.html"))
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)

	img := doc.Find(`img[src="/images/trust-verified.png"]`)
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "64", img.AttrOr("width", ""))

	srcset := doc.Find("picture source").AttrOr("srcset", "")
	assert.Contains(t, srcset, "/images/trust-verified-16w.webp 16w")
}

func TestSiteSitemap(t *testing.T) {
	out := t.TempDir()
	_, err := Site(context.Background(), Options{
		Registry: page.DefaultRegistry(),
		OutDir:   out,
		BaseURL:  "https://example.com/",
		Now:      fixedNow,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<?xml")))

	var set sitemap.URLSet
	require.NoError(t, xml.Unmarshal(data, &set))
	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://example.com/help-center", set.URLs[0].Loc)
	assert.Equal(t, "2024-05-01", set.URLs[0].LastMod)
}

func TestSiteKeepsExistingVariants(t *testing.T) {
	out := t.TempDir()
	opts := Options{
		Registry: page.DefaultRegistry(),
		Static:   fstest.MapFS{"images/trust-verified.png": {Data: pngBytes(t, 64, 32)}},
		OutDir:   out,
		Widths:   []int{16},
		Now:      fixedNow,
	}

	res, err := Site(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Variants)

	opts.Static = nil
	res, err = Site(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Variants)
}

func TestSiteSkipsUndecodableImages(t *testing.T) {
	out := t.TempDir()
	res, err := Site(context.Background(), Options{
		Registry: page.DefaultRegistry(),
		Static:   fstest.MapFS{"images/broken.png": {Data: []byte("not a png")}},
		OutDir:   out,
		Widths:   []int{16},
		Now:      fixedNow,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Variants)
	assert.FileExists(t, filepath.Join(out, "images", "broken.png"))
}

func TestSiteValidation(t *testing.T) {
	_, err := Site(context.Background(), Options{OutDir: t.TempDir()})
	assert.Error(t, err)

	_, err = Site(context.Background(), Options{Registry: page.DefaultRegistry()})
	assert.Error(t, err)
}

func TestSiteRejectsPathIDs(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "dist")

	_, err := Site(context.Background(), Options{
		Registry: page.NewRegistry(page.Page{ID: "../escaped", Title: "Escaped"}),
		OutDir:   out,
		Now:      fixedNow,
	})
	assert.ErrorIs(t, err, page.ErrInvalidID)
	assert.NoFileExists(t, filepath.Join(root, "escaped", "index.html"))
}

func TestSiteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Site(ctx, Options{
		Registry: page.DefaultRegistry(),
		OutDir:   t.TempDir(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "privacy-policy/index.html", PagePath(page.PrivacyPolicyID))
}
