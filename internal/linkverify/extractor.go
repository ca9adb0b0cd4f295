package linkverify

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
)

// Link is one reference found in a rendered page.
type Link struct {
	URL        string
	Text       string
	Tag        string
	Attribute  string
	IsInternal bool
}

// linkAttrs maps element names to the attribute carrying their reference.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"video":  "src",
	"audio":  "src",
	"source": "src",
	"iframe": "src",
}

// ExtractLinksFromReader parses an HTML document and returns every link in
// document order. siteURL decides which absolute URLs count as internal.
func ExtractLinksFromReader(r io.Reader, siteURL string) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryLinks, "parse HTML").Build()
	}
	site, err := url.Parse(siteURL)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid site URL").
			WithContext("url", siteURL).Build()
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				if ref := getAttr(n, attr); ref != "" {
					links = append(links, Link{
						URL:        ref,
						Text:       describe(n),
						Tag:        n.Data,
						Attribute:  attr,
						IsInternal: isInternalLink(ref, site),
					})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func describe(n *html.Node) string {
	switch n.Data {
	case "img":
		return getAttr(n, "alt")
	case "link":
		return getAttr(n, "rel")
	case "a":
		return extractText(n)
	default:
		return ""
	}
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := extractText(c); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// isInternalLink reports whether ref points inside the site: relative
// references and absolute URLs on the site's host.
func isInternalLink(ref string, site *url.URL) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	if u.Scheme == "" && u.Host == "" {
		return true
	}
	if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "" {
		return false
	}
	return site != nil && site.Host != "" && strings.EqualFold(u.Host, site.Host)
}

// ShouldVerifyLink filters out references that never resolve to a page:
// bare fragments, non-navigational schemes and empty values.
func ShouldVerifyLink(link Link) bool {
	ref := strings.TrimSpace(link.URL)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return false
	}
	for _, scheme := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(strings.ToLower(ref), scheme) {
			return false
		}
	}
	return link.IsInternal
}
