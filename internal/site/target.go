package site

import (
	"net/url"
	"path"
	"strings"
)

// Target is a link destination: exactly one of Path (a page inside the site,
// relative to BaseURL) or URL (an absolute external address) is set.
// The YAML keys mirror the navbar/footer "to" and "href" convention.
type Target struct {
	Path string `yaml:"to,omitempty"`
	URL  string `yaml:"href,omitempty"`
}

// To returns an internal target.
func To(p string) Target { return Target{Path: p} }

// Href returns an external target.
func Href(u string) Target { return Target{URL: u} }

// IsInternal reports whether the target points inside the site.
func (t Target) IsInternal() bool { return t.hasPath() && !t.hasURL() }

// IsExternal reports whether the target is an absolute external URL.
func (t Target) IsExternal() bool { return t.hasURL() && !t.hasPath() }

// IsSet reports whether at least one side is set.
func (t Target) IsSet() bool { return t.hasPath() || t.hasURL() }

func (t Target) hasPath() bool { return t.Path != "" }
func (t Target) hasURL() bool  { return t.URL != "" }

func blank(s string) bool { return s != "" && strings.TrimSpace(s) == "" }

// check returns a problem description, or "" when the target is well formed.
// A whitespace-only side counts as set and is rejected.
func (t Target) check() (code, msg string) {
	hasPath, hasURL := t.hasPath(), t.hasURL()
	switch {
	case blank(t.Path):
		return "target_blank", "has a blank internal path (to)"
	case blank(t.URL):
		return "target_blank", "has a blank external url (href)"
	case hasPath && hasURL:
		return "target_both", "sets both an internal path (" + t.Path + ") and an external url (" + t.URL + ")"
	case !hasPath && !hasURL:
		return "target_missing", "sets neither an internal path nor an external url"
	case hasPath:
		if !strings.HasPrefix(t.Path, "/") && !strings.HasPrefix(t.Path, "#") {
			return "path_relative", "internal path " + t.Path + " must start with / or #"
		}
		if strings.Contains(t.Path, "://") {
			return "path_absolute", "internal path " + t.Path + " looks like an absolute url; use href"
		}
	default:
		if !isAbsoluteURL(t.URL) {
			return "url_not_absolute", "external url " + t.URL + " must be absolute (scheme://host)"
		}
	}
	return "", ""
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}

// joinBase prefixes an internal path with baseURL ("/" or "/project/").
func joinBase(baseURL, p string) string {
	if strings.HasPrefix(p, "#") {
		return p
	}
	trailing := strings.HasSuffix(p, "/") && p != "/"
	joined := path.Join("/", baseURL, p)
	if trailing || (p == "/" && joined != "/") {
		joined += "/"
	}
	return joined
}
