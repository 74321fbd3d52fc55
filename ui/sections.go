package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/wayfarer-travel/site/nav"
	"github.com/wayfarer-travel/site/page"
)

// ---- Hero ----

func (r *Renderer) hero(h page.Hero) g.Node {
	return Div(
		Class("bg-blue-50 py-16"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row items-center gap-8"),
			Div(
				Class("flex-1"),
				H1(Class("text-4xl font-bold mb-4"), g.Text(h.Title)),
				g.If(h.Tagline != "", P(Class("text-lg text-gray-600 mb-6"), g.Text(h.Tagline))),
				g.If(h.SearchPlaceholder != "", searchForm(h.SearchPlaceholder)),
			),
			g.If(h.Image.Src != "", Div(
				Class("flex-1"),
				r.image(h.Image, "w-full rounded-lg shadow", true),
			)),
		),
	)
}

// searchForm has no backend; submitting it goes to the search navigation hook.
func searchForm(placeholder string) g.Node {
	return Form(
		Class("flex gap-2 max-w-xl"),
		g.Attr("role", "search"),
		hx.Post(nav.Path(nav.Search)),
		hx.Swap("none"),
		Input(
			Type("search"),
			Name("q"),
			Class("flex-1 p-2 border rounded"),
			Placeholder(placeholder),
			g.Attr("aria-label", placeholder),
		),
		styledButton("Search", buttonPrimary, Type("submit")),
	)
}

// ---- Text ----

func (r *Renderer) textBlock(t page.TextBlock) g.Node {
	if t.Heading == "" && t.Body == "" {
		return nil
	}
	return contentContainer(
		Div(
			Class("flex flex-col md:flex-row gap-6 items-start"),
			g.If(t.Image.Src != "", Div(
				Class("w-24 flex-shrink-0"),
				r.image(t.Image, "w-24 h-24", false),
			)),
			Div(
				Class("flex-1"),
				g.If(t.Heading != "", sectionHeader(t.Heading)),
				Div(Class("prose max-w-none"), r.markdownNode(t.Body)),
			),
		),
	)
}

// ---- FAQ ----

func faqList(f page.FaqList) g.Node {
	if len(f.Items) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, faqItem(item))
	}
	return contentContainer(
		g.If(f.Heading != "", sectionHeader(f.Heading)),
		Div(Class("divide-y border rounded-lg"), g.Group(items)),
	)
}

func faqItem(item page.FaqItem) g.Node {
	return g.El("details",
		Class("faq-item p-4"),
		g.El("summary",
			Class("faq-question font-semibold cursor-pointer"),
			g.Text(item.Question),
		),
		P(Class("faq-answer mt-2 text-gray-700"), g.Text(item.Answer)),
	)
}

// ---- Contact ----

func contactList(c page.ContactList) g.Node {
	if len(c.Entries) == 0 {
		return nil
	}
	rows := make([]g.Node, 0, len(c.Entries))
	for _, e := range c.Entries {
		rows = append(rows, contactRow(e))
	}
	return contentContainer(
		g.If(c.Heading != "", sectionHeader(c.Heading)),
		Ul(Class("grid gap-4 md:grid-cols-3"), g.Group(rows)),
	)
}

func contactRow(e page.ContactEntry) g.Node {
	value := g.Node(Span(Class("contact-value text-lg"), g.Text(e.Value)))
	if href := contactHref(e.Value); href != "" {
		value = A(Href(href), Class("contact-value text-lg text-blue-600 hover:underline"), g.Text(e.Value))
	}
	return Li(
		Class("contact-row bg-gray-50 border rounded-lg p-4"),
		Div(Class("contact-label text-sm text-gray-500"), g.Text(e.Label)),
		value,
	)
}

// contactHref turns an e-mail address or phone number into a mailto: or
// tel: link. Anything else gets no link.
func contactHref(value string) string {
	v := strings.TrimSpace(value)
	if strings.Contains(v, "@") {
		return "mailto:" + v
	}
	var digits strings.Builder
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' && digits.Len() == 0:
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return ""
		}
	}
	if strings.TrimPrefix(digits.String(), "+") == "" {
		return ""
	}
	return "tel:" + digits.String()
}
