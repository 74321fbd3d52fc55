package handlers

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/site/nav"
	"github.com/wayfarer-travel/site/page"
	"github.com/wayfarer-travel/site/sitemap"
)

func newTestApp(t *testing.T, navigator nav.Navigator) *fiber.App {
	t.Helper()
	require.NoError(t, Init(Options{
		Registry:  page.DefaultRegistry(),
		Navigator: navigator,
	}))

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/", HandleHome)
	app.Get("/sitemap.xml", HandleSitemap)
	app.Get("/health", HandleHealth)
	app.Post("/navigate/:target", HandleNavigate)
	app.Get("/:page", HandlePage)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func TestInitRequiresRegistry(t *testing.T) {
	assert.Error(t, Init(Options{}))
}

func TestHandleHome(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/help-center", resp.Header.Get("Location"))
}

func TestHandlePage(t *testing.T) {
	app := newTestApp(t, nil)

	for _, id := range page.DefaultRegistry().IDs() {
		t.Run(id, func(t *testing.T) {
			resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/"+id, nil))
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.NotEmpty(t, resp.Header.Get("ETag"))

			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
			require.NoError(t, err)

			p, _ := page.DefaultRegistry().Get(id)
			assert.Equal(t, len(p.Sections), doc.Find("main > section").Length())
		})
	}
}

func TestHandlePageNotFound(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/careers", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Error 404")
	assert.Contains(t, string(body), "couldn&#39;t find that page")
}

func TestHandlePageIsStable(t *testing.T) {
	app := newTestApp(t, nil)

	first, firstBody := do(t, app, httptest.NewRequest(http.MethodGet, "/trust-safety", nil))
	second, secondBody := do(t, app, httptest.NewRequest(http.MethodGet, "/trust-safety", nil))

	assert.Equal(t, first.Header.Get("ETag"), second.Header.Get("ETag"))
	assert.Equal(t, firstBody, secondBody)
}

func TestHandlePageNotModified(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/privacy-policy", nil))
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/privacy-policy", nil)
	req.Header.Set("If-None-Match", etag)
	resp, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/privacy-policy", nil)
	req.Header.Set("If-None-Match", `W/"stale"`)
	resp, _ = do(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandlePageGzip(t *testing.T) {
	app := newTestApp(t, nil)

	_, plain := do(t, app, httptest.NewRequest(http.MethodGet, "/help-center", nil))

	req := httptest.NewRequest(http.MethodGet, "/help-center", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	resp, body := do(t, app, req)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(bytes.NewReader(body))
	require.NoError(t, err)
	unzipped, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, plain, unzipped)
}

type recordingNavigator struct {
	targets []nav.Target
	err     error
}

func (r *recordingNavigator) OnNavigate(_ context.Context, target nav.Target) error {
	r.targets = append(r.targets, target)
	return r.err
}

func TestHandleNavigate(t *testing.T) {
	rec := &recordingNavigator{}
	app := newTestApp(t, rec)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/navigate/sign-up", nil))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodPost, "/navigate/search", nil))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, []nav.Target{nav.SignUp, nav.Search}, rec.targets)
}

func TestHandleNavigateDefaultHooksAreNoops(t *testing.T) {
	app := newTestApp(t, nil)

	for _, target := range nav.Known {
		resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, nav.Path(target), nil))
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, target)
	}
}

func TestHandleNavigateUnknownTarget(t *testing.T) {
	rec := &recordingNavigator{}
	app := newTestApp(t, rec)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/navigate/checkout", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, rec.targets)
}

func TestHandleNavigateHookError(t *testing.T) {
	app := newTestApp(t, &recordingNavigator{err: errors.New("router down")})

	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/navigate/log-in", nil))
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleSitemap(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	var set sitemap.URLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://wayfarer.travel/help-center", set.URLs[0].Loc)
	assert.Equal(t, "https://wayfarer.travel/trust-safety", set.URLs[2].Loc)
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(t, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, float64(3), health["pages"])
	assert.Contains(t, health, "cache")
}

func TestMatchesETag(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		etag     string
		expected bool
	}{
		{name: "exact", header: `W/"abc"`, etag: `W/"abc"`, expected: true},
		{name: "list", header: `W/"x", W/"abc"`, etag: `W/"abc"`, expected: true},
		{name: "wildcard", header: "*", etag: `W/"abc"`, expected: true},
		{name: "mismatch", header: `W/"x"`, etag: `W/"abc"`, expected: false},
		{name: "empty header", header: "", etag: `W/"abc"`, expected: false},
		{name: "empty etag", header: "*", etag: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchesETag(tt.header, tt.etag))
		})
	}
}
