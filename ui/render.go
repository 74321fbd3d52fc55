package ui

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/wayfarer-travel/site/assets"
	"github.com/wayfarer-travel/site/page"
)

// Renderer maps pages to gomponents trees. It holds no per-request state,
// so one Renderer can serve every request.
type Renderer struct {
	assets   *assets.Manifest
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// NewRenderer creates a Renderer. manifest may be nil, in which case images
// render without dimensions or WebP variants.
func NewRenderer(manifest *assets.Manifest) *Renderer {
	return &Renderer{
		assets:   manifest,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

var defaultRenderer = NewRenderer(nil)

// Render renders p with a Renderer that has no asset manifest.
func Render(p page.Page) g.Node {
	return defaultRenderer.Render(p)
}

// Render returns the page body: one <section> per schema section, in order.
func (r *Renderer) Render(p page.Page) g.Node {
	current := "/" + p.ID
	sections := make([]g.Node, 0, len(p.Sections))
	for _, s := range p.Sections {
		sections = append(sections, r.section(s, current))
	}
	return Main(
		ID("page-"+p.ID),
		g.Attr("data-page", p.ID),
		Class("flex-1"),
		g.Group(sections),
	)
}

func (r *Renderer) section(s page.Section, current string) g.Node {
	if s == nil {
		return emptySection("unknown")
	}

	var body g.Node
	switch v := s.(type) {
	case page.Navbar:
		body = r.navbar(v, current)
	case page.Hero:
		body = r.hero(v)
	case page.TextBlock:
		body = r.textBlock(v)
	case page.FaqList:
		body = faqList(v)
	case page.ContactList:
		body = contactList(v)
	case page.Footer:
		body = footer(v, current)
	}
	if body == nil {
		return emptySection(string(s.Kind()))
	}
	return Section(
		g.Attr("data-section", string(s.Kind())),
		body,
	)
}

func emptySection(kind string) g.Node {
	return Section(g.Attr("data-section", kind))
}
