package page

import (
	"os"
	"sort"
)

// Page is one informational page: an identifier plus its ordered sections.
type Page struct {
	ID          string
	Title       string
	Description string
	Sections    []Section
}

// Clone returns a deep copy of p.
func (p Page) Clone() Page {
	out := p
	if p.Sections != nil {
		out.Sections = make([]Section, len(p.Sections))
		for i, s := range p.Sections {
			out.Sections[i] = cloneSection(s)
		}
	}
	return out
}

// StubLinks returns the navbar and footer links that have no href and go to
// a navigation target instead.
func (p Page) StubLinks() []Link {
	var links []Link
	for _, s := range p.Sections {
		switch v := s.(type) {
		case Navbar:
			links = append(links, v.Links...)
			links = append(links, v.Actions...)
		case Footer:
			for _, g := range v.Groups {
				links = append(links, g.Links...)
			}
		}
	}
	stubs := links[:0]
	for _, l := range links {
		if l.IsStub() {
			stubs = append(stubs, l)
		}
	}
	return stubs
}

// Registry maps page identifiers to pages. It is built once at startup and
// only read afterwards.
type Registry struct {
	pages map[string]Page
}

// NewRegistry creates a registry holding the given pages. A later page with
// the same ID replaces an earlier one.
func NewRegistry(pages ...Page) *Registry {
	r := &Registry{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		r.Add(p)
	}
	return r
}

// Add stores a copy of p under p.ID.
func (r *Registry) Add(p Page) {
	r.pages[p.ID] = p.Clone()
}

// Merge overlays pages onto the registry, replacing pages with the same ID.
func (r *Registry) Merge(pages []Page) {
	for _, p := range pages {
		r.Add(p)
	}
}

// Get returns a copy of the page registered under id.
func (r *Registry) Get(id string) (Page, bool) {
	p, ok := r.pages[id]
	if !ok {
		return Page{}, false
	}
	return p.Clone(), true
}

// IDs returns the registered page identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.pages))
	for id := range r.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pages returns copies of all pages ordered by ID.
func (r *Registry) Pages() []Page {
	ids := r.IDs()
	out := make([]Page, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.pages[id].Clone())
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.pages)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.pages[id]
	return ok
}

// LoadRegistry returns the built-in pages overlaid with the YAML documents
// in contentDir. An empty contentDir means built-in pages only.
func LoadRegistry(contentDir string) (*Registry, error) {
	reg := DefaultRegistry()
	if contentDir == "" {
		return reg, nil
	}
	pages, err := LoadDir(os.DirFS(contentDir), ".")
	if err != nil {
		return nil, err
	}
	reg.Merge(pages)
	return reg, nil
}
