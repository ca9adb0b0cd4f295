package site

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation"
)

var prismThemes = []string{
	"dracula", "duotoneDark", "duotoneLight", "github", "gruvboxMaterialDark",
	"gruvboxMaterialLight", "jettwaveDark", "jettwaveLight", "nightOwl",
	"nightOwlLight", "oceanicNext", "okaidia", "oneDark", "oneLight", "palenight",
	"shadesOfPurple", "synthwave84", "ultramin", "vsDark", "vsLight",
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the whole configuration and reports every problem at once,
// each located by its config path. A nil return means the config is usable.
func (c *Config) Validate() error {
	var vr foundation.ValidationResult
	c.validateIdentity(&vr)
	c.validatePolicies(&vr)
	c.validateI18n(&vr)
	c.validateNavbar(&vr)
	c.validateFooter(&vr)
	c.validateTheme(&vr)
	c.validateHome(&vr)
	return vr.ToError("invalid site configuration")
}

func (c *Config) validateIdentity(vr *foundation.ValidationResult) {
	if strings.TrimSpace(c.Title) == "" {
		vr.Add("title", "required", "must not be empty")
	}
	if !isAbsoluteURL(c.URL) || strings.HasPrefix(c.URL, "mailto:") {
		vr.Add("url", "url_not_absolute", "site url %q must be absolute (scheme://host)", c.URL)
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		vr.Add("baseUrl", "base_url", "%q must start and end with /", c.BaseURL)
	}
	if c.Docs.RouteBasePath != "" && !strings.HasPrefix(c.Docs.RouteBasePath, "/") {
		vr.Add("docs.routeBasePath", "path_relative", "%q must start with /", c.Docs.RouteBasePath)
	}
}

func (c *Config) validatePolicies(vr *foundation.ValidationResult) {
	if _, err := ParseBrokenLinkPolicy(string(c.OnBrokenLinks)); err != nil {
		vr.Add("onBrokenLinks", "policy", "%v", err)
	}
	if _, err := ParseBrokenLinkPolicy(string(c.OnBrokenMarkdownLinks)); err != nil {
		vr.Add("onBrokenMarkdownLinks", "policy", "%v", err)
	}
}

func (c *Config) validateI18n(vr *foundation.ValidationResult) {
	if len(c.I18n.Locales) == 0 {
		vr.Add("i18n.locales", "required", "at least one locale is required")
	}
	for i, l := range c.I18n.Locales {
		if _, err := language.Parse(l); err != nil {
			vr.Add(fmt.Sprintf("i18n.locales[%d]", i), "locale", "%q is not a BCP 47 language tag", l)
		}
	}
	if !slices.Contains(c.I18n.Locales, c.I18n.DefaultLocale) {
		vr.Add("i18n.defaultLocale", "locale", "%q is not listed in i18n.locales", c.I18n.DefaultLocale)
	}
}

func (c *Config) validateNavbar(vr *foundation.ValidationResult) {
	for i, e := range c.Navbar.Items {
		field := fmt.Sprintf("navbar.items[%d]", i)
		if e.Position != PositionLeft && e.Position != PositionRight {
			vr.Add(field, "position", "position %q must be left or right", e.Position)
		}
		switch e.Kind {
		case NavLink:
			if strings.TrimSpace(e.Label) == "" {
				vr.Add(field, "label", "link entry needs a label")
			}
			if code, msg := e.Target.check(); code != "" {
				vr.Add(field, code, "%s %s", quoteLabel(e.Label), msg)
			}
		case NavDocsVersionDropdown, NavLocaleDropdown:
			if e.Target.IsSet() {
				vr.Add(field, "widget_target", "%s widget must not set a target", e.Kind)
			}
		default:
			vr.Add(field, "kind", "unknown navbar item type %q", e.Kind)
		}
	}
}

func (c *Config) validateFooter(vr *foundation.ValidationResult) {
	for gi, g := range c.Footer.Groups {
		if strings.TrimSpace(g.Title) == "" {
			vr.Add(fmt.Sprintf("footer.links[%d]", gi), "title", "group needs a title")
		}
		for ii, it := range g.Items {
			field := fmt.Sprintf("footer.links[%d].items[%d]", gi, ii)
			if it.IsHTML() {
				if it.Target.IsSet() || it.Label != "" {
					vr.Add(field, "html_mixed", "html item must not also set a label or target")
				}
				continue
			}
			if strings.TrimSpace(it.Label) == "" {
				vr.Add(field, "label", "link item needs a label")
			}
			if code, msg := it.Target.check(); code != "" {
				vr.Add(field, code, "%s %s", quoteLabel(it.Label), msg)
			}
		}
	}
}

func (c *Config) validateTheme(vr *foundation.ValidationResult) {
	if !slices.Contains(prismThemes, c.Prism.Theme) {
		vr.Add("prism.theme", "theme", "unknown code theme %q", c.Prism.Theme)
	}
	if !slices.Contains(prismThemes, c.Prism.DarkTheme) {
		vr.Add("prism.darkTheme", "theme", "unknown code theme %q", c.Prism.DarkTheme)
	}
	if c.Home.HeroColor != "" && !hexColor.MatchString(c.Home.HeroColor) {
		vr.Add("home.heroColor", "color", "%q is not a hex color", c.Home.HeroColor)
	}
}

func (c *Config) validateHome(vr *foundation.ValidationResult) {
	if code, msg := To(c.Home.GettingStartedPath).check(); code != "" {
		vr.Add("home.gettingStartedPath", code, "%s", msg)
	}
	for i, s := range c.Home.Support.Sponsors {
		if code, msg := s.Target.check(); code != "" {
			vr.Add(fmt.Sprintf("home.support.sponsors[%d]", i), code, "%s %s", quoteLabel(s.Name), msg)
		}
	}
}

func quoteLabel(label string) string {
	if label == "" {
		return "entry"
	}
	return fmt.Sprintf("entry %q", label)
}
