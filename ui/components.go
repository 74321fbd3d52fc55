package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("container mx-auto px-4 py-10 max-w-4xl"),
		g.Group(content),
	)
}

func sectionHeader(title string) g.Node {
	return H2(Class("text-2xl font-semibold mb-4"), g.Text(title))
}

// ---- Button Components ----

type buttonVariant string

const (
	buttonPrimary   buttonVariant = "primary"
	buttonSecondary buttonVariant = "secondary"
)

func getButtonClass(variant buttonVariant) string {
	baseClass := "px-4 py-2 rounded inline-block "
	switch variant {
	case buttonSecondary:
		return baseClass + "text-blue-500 hover:underline"
	default:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	}
}

func styledButton(text string, variant buttonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

func styledLink(text string, href string, variant buttonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Href(href), Class(getButtonClass(variant))}, attrs...)
	return A(append(allAttrs, g.Text(text))...)
}

// ---- Error Page ----

func ErrorPage(code int, message string) g.Node {
	title := fmt.Sprintf("Error %d", code)
	return layout(title, "", []g.Node{
		Main(
			Class("flex-1"),
			contentContainer(
				H1(Class("text-4xl font-bold mb-8"), g.Text(title)),
				P(Class("mb-6"), g.Text(message)),
				styledLink("Go to the Help Center", "/", buttonPrimary),
			),
		),
	})
}
