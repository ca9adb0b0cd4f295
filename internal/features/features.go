// Package features holds the product capability list shown on the home page
// and renders it as a row of tiles.
package features

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ajatdarojat45/mongoloquent.com/internal/markup"
)

// Descriptor describes one product capability. Description is inline
// Markdown (emphasis, code, line breaks).
type Descriptor struct {
	Title       string
	Icon        Icon
	Description string
}

// Mongoloquent returns the canonical feature list in display order.
// Each call returns a fresh slice.
func Mongoloquent() []Descriptor {
	return []Descriptor{
		{
			Title:       "Easy to Use",
			Icon:        GlyphMouse,
			Description: "Provides a straightforward and hassle-free user experience.",
		},
		{
			Title:       "Intuitive and expressive syntax",
			Icon:        GlyphBraces,
			Description: "Offers an intuitive and clear syntax for seamless interaction with MongoDB databases.",
		},
		{
			Title:       "Support several relationship types",
			Icon:        GlyphBranch,
			Description: "Enables support for various types of relationships between data for enhanced database modeling flexibility.",
		},
		{
			Title:       "Support the test environment",
			Icon:        GlyphCode,
			Description: "This facilitates testing environment support, allowing developers to thoroughly test functionality with ease.",
		},
	}
}

type tile struct {
	Key         string
	Icon        template.HTML
	Title       string
	Description template.HTML
}

var sectionTemplate = template.Must(template.New("features").Parse(`<section class="features">
<div class="container" style="margin-top: 30px">
<div class="row">
{{- range .}}
<div class="col col--3" data-key="{{.Key}}">
{{- if .Icon}}
<div class="text--center">{{.Icon}}</div>
{{- end}}
<div class="text--center padding-horiz--md">
{{- if .Title}}
<h3>{{.Title}}</h3>
{{- end}}
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
</div>
</div>
{{- end}}
</div>
</div>
</section>`))

// Section renders one tile per descriptor, in list order, keyed by position.
// Empty fields are omitted. Identical input yields identical output.
func Section(list []Descriptor, md markup.Renderer) (template.HTML, error) {
	tiles := make([]tile, 0, len(list))
	for i, d := range list {
		t := tile{Key: fmt.Sprintf("feature-%d", i), Title: d.Title}
		if d.Icon != nil {
			t.Icon = d.Icon.Render()
		}
		desc, err := md.Inline(d.Description)
		if err != nil {
			return "", fmt.Errorf("feature %d (%q) description: %w", i, d.Title, err)
		}
		t.Description = desc
		tiles = append(tiles, t)
	}

	var buf bytes.Buffer
	if err := sectionTemplate.Execute(&buf, tiles); err != nil {
		return "", fmt.Errorf("render feature section: %w", err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}
