package ui

import (
	"bytes"

	g "maragu.dev/gomponents"
)

// markdownNode converts a markdown body to sanitised HTML. If conversion
// fails the body is shown as plain text.
func (r *Renderer) markdownNode(body string) g.Node {
	if body == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(body), &buf); err != nil {
		return g.Text(body)
	}
	return g.Raw(r.policy.Sanitize(buf.String()))
}
