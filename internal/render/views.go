package render

import (
	"html/template"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ajatdarojat45/mongoloquent.com/internal/markup"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

type linkView struct {
	Label    string
	Href     string
	External bool
}

type optionView struct {
	Label string
	Href  string
	Lang  string
}

type navItemView struct {
	Kind     string
	Label    string
	Href     string
	External bool
	Options  []optionView
}

type navbarView struct {
	Brand   string
	Home    string
	LogoSrc string
	LogoAlt string
	Left    []navItemView
	Right   []navItemView
	Search  bool
}

type footerItemView struct {
	Label    string
	Href     string
	External bool
	HTML     template.HTML
}

type footerGroupView struct {
	Title string
	Items []footerItemView
}

type footerView struct {
	Style     string
	Groups    []footerGroupView
	Copyright template.HTML
}

type searchView struct {
	AppID        string
	APIKey       string
	IndexName    string
	Preconnect   string
	FacetFilters []string
}

type analyticsView struct {
	ScriptURL string
	WebsiteID string
}

type layoutView struct {
	Lang          string
	Title         string
	Description   string
	Canonical     string
	Favicon       string
	SocialImage   string
	Stylesheet    string
	CodeTheme     string
	CodeThemeDark string
	Search        *searchView
	Analytics     *analyticsView
	Navbar        navbarView
	Footer        footerView
	Main          template.HTML
}

type supportView struct {
	Heading         string
	Body            template.HTML
	SponsorsHeading string
	Sponsors        []linkView
}

type homeView struct {
	Title     string
	Tagline   string
	HeroColor string
	CTALabel  string
	CTAHref   string
	Features  template.HTML
	Support   supportView
}

func (r *Renderer) link(label string, t site.Target) linkView {
	return linkView{Label: label, Href: r.cfg.Resolve(t), External: t.IsExternal()}
}

func (r *Renderer) layout(title, description, route string, main template.HTML) layoutView {
	cfg := r.cfg
	v := layoutView{
		Lang:          cfg.I18n.DefaultLocale,
		Title:         title,
		Description:   description,
		Canonical:     cfg.AbsoluteURL(route),
		Favicon:       cfg.Asset(cfg.Favicon),
		Stylesheet:    cfg.Asset(StylesheetPath),
		CodeTheme:     cfg.Prism.Theme,
		CodeThemeDark: cfg.Prism.DarkTheme,
		Navbar:        r.navbar(),
		Footer:        r.footer(),
		Main:          main,
	}
	if cfg.SocialImage != "" {
		v.SocialImage = cfg.AbsoluteURL(cfg.SocialImage)
	}
	if creds, ok := cfg.Integrations.Search.Get(); ok {
		sv := &searchView{
			AppID:      creds.AppID,
			APIKey:     creds.APIKey,
			IndexName:  creds.IndexName,
			Preconnect: "https://" + creds.AppID + "-dsn.algolia.net",
		}
		if creds.ContextualSearch {
			sv.FacetFilters = []string{"language:" + cfg.I18n.DefaultLocale}
		} else {
			sv.FacetFilters = []string{}
		}
		v.Search = sv
	}
	if a, ok := cfg.Integrations.Analytics.Get(); ok {
		v.Analytics = &analyticsView{ScriptURL: a.ScriptURL, WebsiteID: a.WebsiteID}
	}
	return v
}

func (r *Renderer) navbar() navbarView {
	cfg := r.cfg
	v := navbarView{
		Brand:   cfg.Navbar.Title,
		Home:    cfg.Resolve(site.To("/")),
		LogoSrc: cfg.Asset(cfg.Navbar.Logo.Src),
		LogoAlt: cfg.Navbar.Logo.Alt,
		Search:  cfg.Integrations.SearchEnabled(),
	}
	for _, e := range cfg.Navbar.Side(site.PositionLeft) {
		if item, ok := r.navItem(e); ok {
			v.Left = append(v.Left, item)
		}
	}
	for _, e := range cfg.Navbar.Side(site.PositionRight) {
		if item, ok := r.navItem(e); ok {
			v.Right = append(v.Right, item)
		}
	}
	return v
}

// navItem maps an entry to its view; widgets with nothing to offer are dropped.
func (r *Renderer) navItem(e site.NavEntry) (navItemView, bool) {
	switch e.Kind {
	case site.NavLink:
		l := r.link(e.Label, e.Target)
		return navItemView{Kind: "link", Label: l.Label, Href: l.Href, External: l.External}, true
	case site.NavLocaleDropdown:
		if len(r.cfg.I18n.Locales) < 2 {
			return navItemView{}, false
		}
		v := navItemView{Kind: string(e.Kind), Label: localeName(r.cfg.I18n.DefaultLocale)}
		for _, loc := range r.cfg.I18n.Locales {
			prefix := "/"
			if loc != r.cfg.I18n.DefaultLocale {
				prefix = "/" + loc + "/"
			}
			v.Options = append(v.Options, optionView{Label: localeName(loc), Href: r.cfg.Resolve(site.To(prefix)), Lang: loc})
		}
		return v, true
	case site.NavDocsVersionDropdown:
		if len(r.cfg.Docs.Versions) == 0 {
			return navItemView{}, false
		}
		v := navItemView{Kind: string(e.Kind), Label: r.cfg.Docs.Versions[0]}
		base := strings.TrimSuffix(r.cfg.Docs.RouteBasePath, "/")
		for i, ver := range r.cfg.Docs.Versions {
			p := base + "/"
			if i > 0 {
				p = base + "/" + ver + "/"
			}
			v.Options = append(v.Options, optionView{Label: ver, Href: r.cfg.Resolve(site.To(p)), Lang: r.cfg.I18n.DefaultLocale})
		}
		return v, true
	default:
		return navItemView{}, false
	}
}

func (r *Renderer) footer() footerView {
	cfg := r.cfg
	v := footerView{Style: cfg.Footer.Style, Copyright: markup.Trusted(cfg.CopyrightHTML(r.year()))}
	for _, g := range cfg.Footer.Groups {
		gv := footerGroupView{Title: g.Title}
		for _, it := range g.Items {
			if it.IsHTML() {
				gv.Items = append(gv.Items, footerItemView{HTML: markup.Trusted(it.HTML)})
				continue
			}
			l := r.link(it.Label, it.Target)
			gv.Items = append(gv.Items, footerItemView{Label: l.Label, Href: l.Href, External: l.External})
		}
		v.Groups = append(v.Groups, gv)
	}
	return v
}

// localeName returns the locale's name in its own language ("English", "Deutsch").
func localeName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.Self.Name(t); name != "" {
		return name
	}
	return tag
}
