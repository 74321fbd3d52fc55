package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/wayfarer-travel/site/nav"
	"github.com/wayfarer-travel/site/page"
)

func (r *Renderer) navbar(n page.Navbar, current string) g.Node {
	links := make([]g.Node, 0, len(n.Links))
	for _, l := range n.Links {
		links = append(links, navLink(l, current))
	}
	actions := make([]g.Node, 0, len(n.Actions))
	for i, l := range n.Actions {
		variant := buttonSecondary
		if i == 0 {
			variant = buttonPrimary
		}
		actions = append(actions, actionControl(l, variant))
	}

	return Nav(
		Class("border-b"),
		Div(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(
				Href("/"),
				Class("flex items-center gap-2 text-xl font-bold"),
				g.If(n.Logo.Src != "", r.image(n.Logo, "h-8 w-auto", true)),
				g.Text(n.Brand),
			),
			Div(Class("hidden md:flex items-center space-x-6"), g.Group(links)),
			Div(Class("flex items-center space-x-4"), g.Group(actions)),
		),
	)
}

func navLink(l page.Link, current string) g.Node {
	if l.IsStub() {
		return stubControl(l, "text-gray-700 hover:text-blue-600")
	}
	class := "text-gray-700 hover:text-blue-600"
	if l.Href == current {
		class = "text-blue-600 font-semibold"
	}
	return A(
		Href(l.Href),
		Class(class),
		g.If(l.Href == current, g.Attr("aria-current", "page")),
		g.Text(l.Label),
	)
}

func actionControl(l page.Link, variant buttonVariant) g.Node {
	if l.IsStub() {
		return stubControl(l, getButtonClass(variant))
	}
	return styledLink(l.Label, l.Href, variant)
}

// stubControl renders a link with no destination yet as a button that
// reports the click to the navigation hooks and leaves the page as is.
func stubControl(l page.Link, class string) g.Node {
	return Button(
		Type("button"),
		Class(class),
		g.Attr("data-nav-target", l.Target),
		hx.Post(nav.Path(nav.Target(l.Target))),
		hx.Swap("none"),
		g.Text(l.Label),
	)
}

func footer(f page.Footer, current string) g.Node {
	groups := make([]g.Node, 0, len(f.Groups))
	for _, grp := range f.Groups {
		links := make([]g.Node, 0, len(grp.Links))
		for _, l := range grp.Links {
			links = append(links, Li(navLink(l, current)))
		}
		groups = append(groups, Div(
			H3(Class("font-semibold mb-3"), g.Text(grp.Title)),
			Ul(Class("space-y-2 text-sm"), g.Group(links)),
		))
	}

	return Footer(
		Class("bg-gray-100 border-t mt-16"),
		Div(
			Class("container mx-auto px-4 py-10"),
			Div(Class("grid gap-8 md:grid-cols-3"), g.Group(groups)),
			g.If(f.Copyright != "", P(Class("text-xs text-gray-500 mt-8"), g.Text(f.Copyright))),
		),
	)
}
