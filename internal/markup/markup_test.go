package markup

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInline(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		src  string
		want template.HTML
	}{
		{name: "plain", src: "Provides a straightforward experience.", want: "Provides a straightforward experience."},
		{name: "emphasis", src: "An *intuitive* and **clear** syntax", want: "An <em>intuitive</em> and <strong>clear</strong> syntax"},
		{name: "code", src: "Call `Model.find()`", want: "Call <code>Model.find()</code>"},
		{name: "line break", src: "first\nsecond", want: "first<br>\nsecond"},
		{name: "empty", src: "   ", want: ""},
		{name: "raw html dropped", src: "a <script>x</script> b", want: "a <!-- raw HTML omitted -->x<!-- raw HTML omitted --> b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Inline(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInlineKeepsMultipleParagraphs(t *testing.T) {
	got, err := New().Inline("one\n\ntwo")
	require.NoError(t, err)
	assert.Equal(t, template.HTML("<p>one</p>\n<p>two</p>"), got)
}

func TestInlineIsDeterministic(t *testing.T) {
	r := New()
	a, err := r.Inline("Enables *various* relationship types")
	require.NoError(t, err)
	b, err := r.Inline("Enables *various* relationship types")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTrusted(t *testing.T) {
	assert.Equal(t, template.HTML(`<a href="x">y</a>`), Trusted(`<a href="x">y</a>`))
}
