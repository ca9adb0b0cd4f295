package linkverify

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

// BrokenLink is an internal reference that resolves to nothing the build produces.
type BrokenLink struct {
	Page   string `json:"page"`
	URL    string `json:"url"`
	Route  string `json:"route"`
	Tag    string `json:"tag,omitempty"`
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason"`
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s -> %s (%s)", b.Page, b.URL, b.Reason)
}

// Verifier resolves internal references against the routes a build produces.
type Verifier struct {
	// SiteURL is the absolute site URL; its host marks absolute links as internal.
	SiteURL string
	// BaseURL is the path prefix every internal route is served under.
	BaseURL string
	// Known reports whether a site-relative route ("/docs/x", "/img/a.png")
	// is produced by the build.
	Known func(route string) bool
}

// VerifyPage extracts the links of one rendered page and returns those that
// do not resolve, one entry per broken route. pageRoute is the page's own
// site-relative route and is used for relative references.
func (v *Verifier) VerifyPage(pageRoute string, r io.Reader) ([]BrokenLink, error) {
	links, err := ExtractLinksFromReader(r, v.SiteURL)
	if err != nil {
		return nil, err
	}
	var broken []BrokenLink
	seen := make(map[string]bool)
	for _, l := range links {
		if !ShouldVerifyLink(l) {
			continue
		}
		b, ok := v.check(pageRoute, l.URL)
		if ok || seen[b.key()] {
			continue
		}
		seen[b.key()] = true
		b.Tag, b.Text = l.Tag, l.Text
		broken = append(broken, b)
	}
	return broken, nil
}

// MergeTargets appends the config-level entries from VerifyTargets whose
// route no rendered page reported, so a target that reaches the HTML is
// counted only through the pages it appears on.
func MergeTargets(pages, targets []BrokenLink) []BrokenLink {
	reported := make(map[string]bool, len(pages))
	for _, b := range pages {
		reported[b.key()] = true
	}
	out := append([]BrokenLink(nil), pages...)
	for _, b := range targets {
		if reported[b.key()] {
			continue
		}
		reported[b.key()] = true
		out = append(out, b)
	}
	return out
}

// key identifies the destination of a broken link.
func (b BrokenLink) key() string {
	if b.Route != "" {
		return b.Route
	}
	return b.URL
}

// VerifyTargets checks the internal targets declared by the navbar, footer
// and home page, so broken configuration is reported even when a widget
// hides the link from rendered HTML.
func (v *Verifier) VerifyTargets(cfg *site.Config) []BrokenLink {
	var broken []BrokenLink
	check := func(where, label string, t site.Target) {
		if !t.IsInternal() || strings.HasPrefix(t.Path, "#") {
			return
		}
		if b, ok := v.check("/", cfg.Resolve(t)); !ok {
			b.Page = where
			b.Text = label
			broken = append(broken, b)
		}
	}
	for i, e := range cfg.Navbar.Items {
		if !e.IsWidget() {
			check(fmt.Sprintf("navbar.items[%d]", i), e.Label, e.Target)
		}
	}
	for g, group := range cfg.Footer.Groups {
		for i, it := range group.Items {
			if !it.IsHTML() {
				check(fmt.Sprintf("footer.links[%d].items[%d]", g, i), it.Label, it.Target)
			}
		}
	}
	check("home.gettingStartedPath", cfg.Home.CallToAction, site.To(cfg.Home.GettingStartedPath))
	return broken
}

func (v *Verifier) check(pageRoute, ref string) (BrokenLink, bool) {
	b := BrokenLink{Page: pageRoute, URL: ref}
	u, err := url.Parse(ref)
	if err != nil {
		b.Reason = "malformed URL"
		return b, false
	}

	p := u.Path
	if p == "" {
		return b, true
	}
	base := strings.TrimSuffix(v.BaseURL, "/")
	if !strings.HasPrefix(p, "/") {
		p = path.Join(path.Dir(base+pageRoute), p)
	}
	if p != base && !strings.HasPrefix(p, base+"/") {
		b.Route = p
		b.Reason = "outside base URL " + base + "/"
		return b, false
	}
	route := strings.TrimPrefix(p, base)
	if route == "" {
		route = "/"
	}
	b.Route = route
	if v.Known != nil && v.Known(route) {
		return b, true
	}
	b.Reason = "no page or file produces this route"
	return b, false
}

// Apply enforces policy on a set of broken links. Only BrokenLinksThrow
// returns an error; warn and log report each link at the matching level.
func Apply(policy site.BrokenLinkPolicy, broken []BrokenLink) error {
	if len(broken) == 0 {
		return nil
	}
	switch policy {
	case site.BrokenLinksIgnore:
		return nil
	case site.BrokenLinksLog:
		for _, b := range broken {
			slog.Info("Broken link", logfields.Page(b.Page), logfields.URL(b.URL), slog.String("reason", b.Reason))
		}
		return nil
	case site.BrokenLinksThrow:
		for _, b := range broken {
			slog.Error("Broken link", logfields.Page(b.Page), logfields.URL(b.URL), slog.String("reason", b.Reason))
		}
		lines := make([]string, 0, len(broken))
		for _, b := range broken {
			lines = append(lines, b.String())
		}
		return errors.LinkError(fmt.Sprintf("found %d broken link(s): %s", len(broken), strings.Join(lines, "; "))).
			Fatal().
			WithContext("count", len(broken)).
			WithContext("policy", string(policy)).
			Build()
	default:
		for _, b := range broken {
			slog.Warn("Broken link", logfields.Page(b.Page), logfields.URL(b.URL), slog.String("reason", b.Reason))
		}
		return nil
	}
}
