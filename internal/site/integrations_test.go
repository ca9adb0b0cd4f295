package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIntegrationsEmptyEnvDisablesEverything(t *testing.T) {
	in := ResolveIntegrations(MapEnv{})

	assert.False(t, in.SearchEnabled())
	assert.True(t, in.Search.IsNone())
	assert.False(t, in.AnalyticsEnabled())
}

func TestResolveIntegrationsBlankValuesAreAbsent(t *testing.T) {
	in := ResolveIntegrations(MapEnv{
		EnvSearchAppID:     "",
		EnvSearchAPIKey:    "  ",
		EnvSearchIndexName: "",
		EnvAnalyticsSiteID: "\t",
	})

	assert.True(t, in.Search.IsNone())
	assert.True(t, in.Analytics.IsNone())
}

func TestResolveIntegrationsPartialSearchIsDisabled(t *testing.T) {
	in := ResolveIntegrations(MapEnv{
		EnvSearchAppID:  "APP",
		EnvSearchAPIKey: "KEY",
	})
	assert.False(t, in.SearchEnabled())
}

func TestResolveIntegrationsComplete(t *testing.T) {
	in := ResolveIntegrations(MapEnv{
		EnvSearchAppID:     "APP",
		EnvSearchAPIKey:    "KEY",
		EnvSearchIndexName: "mongoloquent",
		EnvAnalyticsSiteID: "site-123",
	})

	search, ok := in.Search.Get()
	require.True(t, ok)
	assert.Equal(t, SearchCredentials{
		AppID:            "APP",
		APIKey:           "KEY",
		IndexName:        "mongoloquent",
		ContextualSearch: true,
		SearchPagePath:   "search",
	}, search)

	analytics, ok := in.Analytics.Get()
	require.True(t, ok)
	assert.Equal(t, "site-123", analytics.WebsiteID)
	assert.Equal(t, "https://cloud.umami.is/script.js", analytics.ScriptURL)
}

func TestResolveIntegrationsNilEnv(t *testing.T) {
	in := ResolveIntegrations(nil)
	assert.False(t, in.SearchEnabled())
	assert.False(t, in.AnalyticsEnabled())
}

func TestOSEnv(t *testing.T) {
	t.Setenv(EnvAnalyticsSiteID, "from-os")
	in := ResolveIntegrations(OSEnv{})
	assert.Equal(t, "from-os", in.Analytics.Unwrap().WebsiteID)
}
