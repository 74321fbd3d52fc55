package page

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wayfarer-travel/site/nav"
)

var (
	ErrMissingID = errors.New("page document has no id")
	ErrInvalidID = errors.New("page id must be a single path segment of letters, digits, '-' or '_'")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidID reports whether id can be served as /<id> and exported as
// <id>/index.html.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// document is the YAML form of a Page.
type document struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Sections    sectionList `yaml:"sections"`
}

type sectionList []Section

// UnmarshalYAML decodes each entry by its "kind" tag.
func (l *sectionList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: sections must be a list", value.Line)
	}
	out := make(sectionList, 0, len(value.Content))
	for _, node := range value.Content {
		var tag struct {
			Kind Kind `yaml:"kind"`
		}
		if err := node.Decode(&tag); err != nil {
			return err
		}
		s, err := decodeSection(tag.Kind, node)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

func decodeSection(kind Kind, node *yaml.Node) (Section, error) {
	switch kind {
	case KindNavbar:
		var v Navbar
		err := node.Decode(&v)
		return v, err
	case KindHero:
		var v Hero
		err := node.Decode(&v)
		return v, err
	case KindText:
		var v TextBlock
		err := node.Decode(&v)
		return v, err
	case KindFaq:
		var v FaqList
		err := node.Decode(&v)
		return v, err
	case KindContact:
		var v ContactList
		err := node.Decode(&v)
		return v, err
	case KindFooter:
		var v Footer
		err := node.Decode(&v)
		return v, err
	case "":
		return nil, errors.New("section has no kind")
	default:
		return nil, fmt.Errorf("unknown section kind %q", kind)
	}
}

// Parse decodes a single YAML page document.
func Parse(data []byte) (Page, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Page{}, err
	}
	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return Page{}, ErrMissingID
	}
	if !ValidID(id) {
		return Page{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	p := Page{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		Sections:    []Section(doc.Sections),
	}
	for _, l := range p.StubLinks() {
		if !nav.IsKnown(nav.Target(l.Target)) {
			return Page{}, fmt.Errorf("link %q: unknown navigation target %q", l.Label, l.Target)
		}
	}
	return p, nil
}

// LoadDir reads every *.yaml and *.yml file in dir, in filename order.
func LoadDir(fsys fs.FS, dir string) ([]Page, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	pages := make([]Page, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}
