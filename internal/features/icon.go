package features

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed glyphs/*.svg
var glyphFS embed.FS

// Icon is anything a feature tile can draw. The section renderer depends only
// on this interface, never on a concrete icon set.
type Icon interface {
	Render() template.HTML
}

// Glyph is one of the bundled vector icons.
type Glyph string

const (
	GlyphMouse  Glyph = "mouse"
	GlyphBraces Glyph = "braces"
	GlyphBranch Glyph = "branch"
	GlyphCode   Glyph = "code"
)

// Glyphs lists every bundled glyph.
func Glyphs() []Glyph {
	return []Glyph{GlyphMouse, GlyphBraces, GlyphBranch, GlyphCode}
}

// SVG returns the raw asset bytes.
func (g Glyph) SVG() ([]byte, error) {
	b, err := glyphFS.ReadFile("glyphs/" + string(g) + ".svg")
	if err != nil {
		return nil, fmt.Errorf("unknown glyph %q: %w", string(g), err)
	}
	return b, nil
}

// Render inlines the SVG with the tile styling attributes. An unknown glyph
// renders nothing.
func (g Glyph) Render() template.HTML {
	b, err := g.SVG()
	if err != nil {
		return ""
	}
	svg := strings.TrimSpace(string(b))
	svg = strings.Replace(svg, "<svg ", `<svg class="featureSvg" role="img" fill="var(--svg-fill-color)" aria-label="`+string(g)+`" `, 1)
	return template.HTML(svg) // #nosec G203 -- embedded asset
}

// ImageIcon references an image by URL instead of inlining it.
type ImageIcon struct {
	Src string
	Alt string
}

// Render returns an <img> tag; attribute values are escaped.
func (i ImageIcon) Render() template.HTML {
	if i.Src == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<img class="featureSvg" src="%s" alt="%s">`, // #nosec G203 -- escaped below
		template.HTMLEscapeString(i.Src), template.HTMLEscapeString(i.Alt)))
}
