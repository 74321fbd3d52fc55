package page

import "slices"

// Kind tags a Section variant.
type Kind string

const (
	KindNavbar  Kind = "navbar"
	KindHero    Kind = "hero"
	KindText    Kind = "text"
	KindFaq     Kind = "faq"
	KindContact Kind = "contact"
	KindFooter  Kind = "footer"
)

// Section is one data-described region of a page.
type Section interface {
	Kind() Kind
}

// Image references a static asset by its exact filename.
type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Link points either at a real URL (Href) or at a named navigation target
// handled by the nav package. Href wins when both are set.
type Link struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href"`
	Target string `yaml:"target"`
}

// IsStub reports whether the link has no real destination yet.
func (l Link) IsStub() bool {
	return l.Href == ""
}

type FaqItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// ContactEntry is one contact row. Value is a phone number or e-mail address.
type ContactEntry struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Navbar struct {
	Brand   string `yaml:"brand"`
	Logo    Image  `yaml:"logo"`
	Links   []Link `yaml:"links"`
	Actions []Link `yaml:"actions"`
}

type Hero struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Image   Image  `yaml:"image"`
	// SearchPlaceholder shows a search box when non-empty.
	SearchPlaceholder string `yaml:"search_placeholder"`
}

// TextBlock is a heading followed by a markdown body.
type TextBlock struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Image   Image  `yaml:"image"`
}

type FaqList struct {
	Heading string    `yaml:"heading"`
	Items   []FaqItem `yaml:"items"`
}

type ContactList struct {
	Heading string         `yaml:"heading"`
	Entries []ContactEntry `yaml:"entries"`
}

type Footer struct {
	Groups    []LinkGroup `yaml:"groups"`
	Copyright string      `yaml:"copyright"`
}

func (Navbar) Kind() Kind      { return KindNavbar }
func (Hero) Kind() Kind        { return KindHero }
func (TextBlock) Kind() Kind   { return KindText }
func (FaqList) Kind() Kind     { return KindFaq }
func (ContactList) Kind() Kind { return KindContact }
func (Footer) Kind() Kind      { return KindFooter }

// cloneSection copies the slices a variant owns so the copy shares no
// backing arrays with the original.
func cloneSection(s Section) Section {
	switch v := s.(type) {
	case Navbar:
		v.Links = slices.Clone(v.Links)
		v.Actions = slices.Clone(v.Actions)
		return v
	case FaqList:
		v.Items = slices.Clone(v.Items)
		return v
	case ContactList:
		v.Entries = slices.Clone(v.Entries)
		return v
	case Footer:
		groups := make([]LinkGroup, len(v.Groups))
		for i, grp := range v.Groups {
			groups[i] = LinkGroup{Title: grp.Title, Links: slices.Clone(grp.Links)}
		}
		v.Groups = groups
		return v
	default:
		// Hero, TextBlock and unknown variants hold no slices.
		return s
	}
}
