package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/wayfarer-travel/site/config"
	"github.com/wayfarer-travel/site/page"
)

// ---- Page Layout ----

// Document wraps the rendered page in the site's HTML5 layout.
func (r *Renderer) Document(p page.Page) g.Node {
	return layout(p.Title, p.Description, []g.Node{r.Render(p)})
}

func layout(title, description string, body []g.Node) g.Node {
	if title == "" {
		title = config.SiteName
	} else {
		title = title + " | " + config.SiteName
	}
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen flex flex-col"),
				g.Group(body),
			),
		},
	})
}
