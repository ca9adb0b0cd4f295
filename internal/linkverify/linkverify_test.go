package linkverify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

const samplePage = `<!DOCTYPE html>
<html><head>
<link rel="stylesheet" href="/assets/css/custom.css">
<link rel="canonical" href="https://mongoloquent.com/">
<link rel="preconnect" href="https://APP-dsn.algolia.net">
</head><body>
<a href="/docs/getting-started/installation">Get <b>Started</b></a>
<a href="https://api.mongoloquent.com">API</a>
<a href="#">-</a>
<a href="mailto:hi@mongoloquent.com">Mail</a>
<a href="/docs/missing">Missing</a>
<img src="img/favicon.png" alt="Logo">
</body></html>`

func knownSet(routes ...string) func(string) bool {
	set := map[string]bool{}
	for _, r := range routes {
		set[r] = true
	}
	return func(r string) bool { return set[r] }
}

func TestExtractLinksFromReader(t *testing.T) {
	links, err := ExtractLinksFromReader(strings.NewReader(samplePage), "https://mongoloquent.com")
	require.NoError(t, err)
	require.Len(t, links, 9)

	assert.Equal(t, Link{URL: "/assets/css/custom.css", Text: "stylesheet", Tag: "link", Attribute: "href", IsInternal: true}, links[0])
	assert.True(t, links[1].IsInternal, "same-host absolute URL is internal")
	assert.False(t, links[2].IsInternal)
	assert.Equal(t, "Get Started", links[3].Text)
	assert.False(t, links[4].IsInternal)
	assert.Equal(t, "Logo", links[8].Text)
}

func TestShouldVerifyLink(t *testing.T) {
	assert.False(t, ShouldVerifyLink(Link{URL: "#", IsInternal: true}))
	assert.False(t, ShouldVerifyLink(Link{URL: "mailto:a@b.c", IsInternal: false}))
	assert.False(t, ShouldVerifyLink(Link{URL: "", IsInternal: true}))
	assert.False(t, ShouldVerifyLink(Link{URL: "https://github.com", IsInternal: false}))
	assert.True(t, ShouldVerifyLink(Link{URL: "/docs", IsInternal: true}))
}

func TestVerifyPageReportsUnknownRoutes(t *testing.T) {
	v := &Verifier{
		SiteURL: "https://mongoloquent.com",
		BaseURL: "/",
		Known:   knownSet("/", "/assets/css/custom.css", "/docs/getting-started/installation", "/img/favicon.png"),
	}
	broken, err := v.VerifyPage("/", strings.NewReader(samplePage))
	require.NoError(t, err)
	require.Len(t, broken, 1)

	assert.Equal(t, "/docs/missing", broken[0].URL)
	assert.Equal(t, "/docs/missing", broken[0].Route)
	assert.Equal(t, "Missing", broken[0].Text)
	assert.Equal(t, "a", broken[0].Tag)
}

func TestVerifyPageStripsBaseURL(t *testing.T) {
	v := &Verifier{
		SiteURL: "https://example.org",
		BaseURL: "/project/",
		Known:   knownSet("/", "/docs/intro"),
	}
	page := `<a href="/project/">home</a><a href="/project/docs/intro">intro</a><a href="/elsewhere">out</a><a href="docs/intro">rel</a>`
	broken, err := v.VerifyPage("/", strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, "/elsewhere", broken[0].URL)
	assert.Contains(t, broken[0].Reason, "outside base URL")
}

func TestVerifyPageReportsEachRouteOnce(t *testing.T) {
	v := &Verifier{SiteURL: "https://mongoloquent.com", BaseURL: "/", Known: knownSet("/")}
	page := `<nav><a href="/docs/missing">Docs</a></nav>
<main><a href="/docs/missing">Get Started</a><a href="docs/missing">relative</a></main>
<footer><a href="/docs/missing">Docs</a><a href="/docs/other">Other</a></footer>`

	broken, err := v.VerifyPage("/", strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, broken, 2)
	assert.Equal(t, "/docs/missing", broken[0].Route)
	assert.Equal(t, "Docs", broken[0].Text)
	assert.Equal(t, "/docs/other", broken[1].Route)
}

func TestMergeTargetsSkipsRenderedRoutes(t *testing.T) {
	pages := []BrokenLink{
		{Page: "/", URL: "/docs/missing", Route: "/docs/missing"},
		{Page: "/404.html", URL: "/docs/missing", Route: "/docs/missing"},
	}
	targets := []BrokenLink{
		{Page: "navbar.items[0]", URL: "/docs/missing", Route: "/docs/missing"},
		{Page: "footer.links[0].items[0]", URL: "/docs/hidden", Route: "/docs/hidden"},
		{Page: "footer.links[1].items[0]", URL: "/docs/hidden", Route: "/docs/hidden"},
	}

	merged := MergeTargets(pages, targets)
	require.Len(t, merged, 3)
	assert.Equal(t, pages, merged[:2])
	assert.Equal(t, "footer.links[0].items[0]", merged[2].Page)
	assert.Empty(t, MergeTargets(nil, nil))
}

func TestVerifyTargets(t *testing.T) {
	cfg := site.Defaults()
	cfg.Footer.Groups[0].Items[0].Target = site.To("/docs/nope")

	v := &Verifier{SiteURL: cfg.URL, BaseURL: cfg.BaseURL, Known: knownSet("/docs/getting-started/installation")}
	broken := v.VerifyTargets(cfg)
	require.Len(t, broken, 1)
	assert.Equal(t, "footer.links[0].items[0]", broken[0].Page)
	assert.Equal(t, "/docs/nope", broken[0].Route)
}

func TestVerifyTargetsCanonicalConfig(t *testing.T) {
	cfg := site.Defaults()
	v := &Verifier{SiteURL: cfg.URL, BaseURL: cfg.BaseURL, Known: knownSet("/docs/getting-started/installation")}
	assert.Empty(t, v.VerifyTargets(cfg))
}

func TestApply(t *testing.T) {
	broken := []BrokenLink{{Page: "/", URL: "/docs/missing", Reason: "no page"}}

	assert.NoError(t, Apply(site.BrokenLinksIgnore, broken))
	assert.NoError(t, Apply(site.BrokenLinksLog, broken))
	assert.NoError(t, Apply(site.BrokenLinksWarn, broken))
	assert.NoError(t, Apply(site.BrokenLinksThrow, nil))

	err := Apply(site.BrokenLinksThrow, broken)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryLinks))
	assert.Contains(t, err.Error(), "/ -> /docs/missing")
}
