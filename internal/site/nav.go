package site

// Position places a navbar entry in the horizontal bar.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// NavKind distinguishes plain links from navbar widgets.
type NavKind string

const (
	NavLink                NavKind = ""
	NavDocsVersionDropdown NavKind = "docsVersionDropdown"
	NavLocaleDropdown      NavKind = "localeDropdown"
)

// NavEntry is a navbar item. Links carry a Target; widgets carry none.
type NavEntry struct {
	Kind     NavKind  `yaml:"type,omitempty"`
	Label    string   `yaml:"label,omitempty"`
	Target   Target   `yaml:",inline"`
	Position Position `yaml:"position"`
}

// IsWidget reports whether the entry is a dropdown widget rather than a link.
func (e NavEntry) IsWidget() bool { return e.Kind != NavLink }

// Logo is the navbar brand image.
type Logo struct {
	Alt string `yaml:"alt"`
	Src string `yaml:"src"`
}

// Navbar holds the brand and the ordered entries.
type Navbar struct {
	Title string     `yaml:"title"`
	Logo  Logo       `yaml:"logo"`
	Items []NavEntry `yaml:"items"`
}

// Side returns the entries for one position, in declaration order.
func (n Navbar) Side(p Position) []NavEntry {
	var out []NavEntry
	for _, e := range n.Items {
		if e.Position == p {
			out = append(out, e)
		}
	}
	return out
}

// FooterItem is either a labelled link or a raw HTML snippet (badges).
type FooterItem struct {
	Label  string `yaml:"label,omitempty"`
	Target Target `yaml:",inline"`
	HTML   string `yaml:"html,omitempty"`
}

// IsHTML reports whether the item is a raw HTML snippet.
func (i FooterItem) IsHTML() bool { return i.HTML != "" }

// FooterGroup is a titled column of footer items.
type FooterGroup struct {
	Title string       `yaml:"title"`
	Items []FooterItem `yaml:"items"`
}

// Footer holds the link groups and the copyright line.
type Footer struct {
	Style     string        `yaml:"style"`
	Groups    []FooterGroup `yaml:"links"`
	Copyright string        `yaml:"copyright"`
}
