// Package markup renders the small amount of rich text the site carries
// (feature descriptions, support copy) with goldmark.
package markup

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts inline Markdown into HTML.
type Renderer interface {
	Inline(src string) (template.HTML, error)
}

// Goldmark is the default Renderer. Raw HTML in the source is dropped.
type Goldmark struct {
	md goldmark.Markdown
}

// New returns a goldmark-backed renderer with GFM strikethrough/linkify and
// hard line breaks.
func New() *Goldmark {
	return &Goldmark{md: goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)}
}

// Inline renders src and strips the wrapping paragraph when the result is a
// single paragraph, so the output can sit inside an existing <p>.
func (g *Goldmark) Inline(src string) (template.HTML, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out), nil // #nosec G203 -- goldmark output with raw HTML disabled
}

// Trusted marks HTML authored in the site configuration (copyright line,
// footer badges) as safe. Never pass user-supplied content.
func Trusted(s string) template.HTML {
	return template.HTML(s) // #nosec G203 -- config-authored markup
}
