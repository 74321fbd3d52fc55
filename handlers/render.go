package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/blake2b"
	g "maragu.dev/gomponents"
)

var errPageNotFound = errors.New("page not found")

// renderedPage is a fully rendered document ready to send, plus its gzip
// encoding and ETag.
type renderedPage struct {
	html []byte
	gzip []byte
	etag string
}

func (p *renderedPage) cost() int64 {
	return int64(len(p.html) + len(p.gzip) + len(p.etag))
}

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderPage returns the cached rendering of the page registered under id,
// rendering it on first use.
func renderPage(id string) (*renderedPage, error) {
	if !registry.Has(id) {
		return nil, errPageNotFound
	}
	return pageCache.GetOrSet(id, func() (*renderedPage, error) {
		p, _ := registry.Get(id)
		var buf bytes.Buffer
		if err := renderer.Document(p).Render(&buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", id, err)
		}
		return newRenderedPage(buf.Bytes()), nil
	})
}

func newRenderedPage(html []byte) *renderedPage {
	sum := blake2b.Sum256(html)
	return &renderedPage{
		html: html,
		gzip: fasthttp.AppendGzipBytesLevel(nil, html, fasthttp.CompressBestCompression),
		etag: fmt.Sprintf(`W/"%x"`, sum[:16]),
	}
}

// send writes p honouring If-None-Match and Accept-Encoding.
func send(c *fiber.Ctx, p *renderedPage) error {
	c.Set(fiber.HeaderETag, p.etag)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	c.Set(fiber.HeaderVary, fiber.HeaderAcceptEncoding)

	if matchesETag(c.Get(fiber.HeaderIfNoneMatch), p.etag) {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if c.Context().Request.Header.HasAcceptEncoding("gzip") {
		c.Set(fiber.HeaderContentEncoding, "gzip")
		return c.Send(p.gzip)
	}
	return c.Send(p.html)
}

func matchesETag(header, etag string) bool {
	if etag == "" || strings.TrimSpace(header) == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		trimmed := strings.TrimSpace(candidate)
		if trimmed == "*" || trimmed == etag {
			return true
		}
	}
	return false
}
