package features

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajatdarojat45/mongoloquent.com/internal/markup"
)

func TestSectionEmitsOneTilePerDescriptorInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 4, 9} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			list := make([]Descriptor, n)
			for i := range list {
				list[i] = Descriptor{Title: fmt.Sprintf("Feature %02d", i), Icon: GlyphCode, Description: "text"}
			}

			out, err := Section(list, markup.New())
			require.NoError(t, err)
			html := string(out)

			assert.Equal(t, n, strings.Count(html, `class="col col--3"`))
			last := -1
			for i := range list {
				pos := strings.Index(html, fmt.Sprintf(`data-key="feature-%d"`, i))
				require.GreaterOrEqual(t, pos, 0)
				assert.Greater(t, pos, last)
				last = pos
				assert.Less(t, strings.Index(html, fmt.Sprintf(`data-key="feature-%d"`, i)),
					strings.Index(html, fmt.Sprintf("<h3>Feature %02d</h3>", i)))
			}
		})
	}
}

func TestSectionIsPure(t *testing.T) {
	list := Mongoloquent()
	a, err := Section(list, markup.New())
	require.NoError(t, err)
	b, err := Section(list, markup.New())
	require.NoError(t, err)
	assert.Equal(t, []byte(a), []byte(b))
}

func TestSectionOmitsEmptyFields(t *testing.T) {
	out, err := Section([]Descriptor{{Title: "Only title"}, {Description: "Only *text*"}}, markup.New())
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "<svg")
	assert.Equal(t, 1, strings.Count(html, "<h3>"))
	assert.Equal(t, 1, strings.Count(html, "<p>"))
	assert.Contains(t, html, "<p>Only <em>text</em></p>")
}

func TestSectionAllowsDuplicateTitles(t *testing.T) {
	out, err := Section([]Descriptor{{Title: "Same"}, {Title: "Same"}}, markup.New())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(out), "<h3>Same</h3>"))
}

func TestSectionEscapesTitles(t *testing.T) {
	out, err := Section([]Descriptor{{Title: "<b>bold</b>"}}, markup.New())
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;b&gt;bold&lt;/b&gt;")
}

type failingMarkup struct{}

func (failingMarkup) Inline(string) (template.HTML, error) { return "", errors.New("boom") }

func TestSectionPropagatesMarkupErrors(t *testing.T) {
	_, err := Section([]Descriptor{{Title: "x", Description: "y"}}, failingMarkup{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `feature 0 ("x") description: boom`)
}

func TestMongoloquentList(t *testing.T) {
	list := Mongoloquent()
	require.Len(t, list, 4)
	assert.Equal(t, "Easy to Use", list[0].Title)
	assert.Equal(t, "Support the test environment", list[3].Title)

	list[0].Title = "mutated"
	assert.Equal(t, "Easy to Use", Mongoloquent()[0].Title)
}

func TestGlyphsRender(t *testing.T) {
	for _, g := range Glyphs() {
		html := string(g.Render())
		assert.True(t, strings.HasPrefix(html, `<svg class="featureSvg" role="img"`), g)
		assert.True(t, strings.HasSuffix(html, "</svg>"), g)
	}
	assert.Empty(t, Glyph("unknown").Render())
	_, err := Glyph("unknown").SVG()
	assert.Error(t, err)
}

func TestImageIcon(t *testing.T) {
	assert.Equal(t, template.HTML(`<img class="featureSvg" src="/img/a.png" alt="a &amp; b">`),
		ImageIcon{Src: "/img/a.png", Alt: "a & b"}.Render())
	assert.Empty(t, ImageIcon{}.Render())
}
