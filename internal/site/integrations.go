package site

import (
	"log/slog"
	"os"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
)

// Environment variables read for optional integrations.
const (
	EnvSearchAppID     = "ALGOLIA_APP_ID"
	EnvSearchAPIKey    = "ALGOLIA_API_KEY"
	EnvSearchIndexName = "ALGOLIA_INDEX_NAME"
	EnvAnalyticsSiteID = "UMAMI_WEBSITE_ID"
)

// Env abstracts environment lookups so tests never touch the process env.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv reads the process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnv is an in-memory Env.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SearchCredentials configures the hosted DocSearch integration.
// The API key is the public search-only key.
type SearchCredentials struct {
	AppID            string
	APIKey           string
	IndexName        string
	ContextualSearch bool
	SearchPagePath   string
}

// AnalyticsSite configures the analytics script.
type AnalyticsSite struct {
	WebsiteID string
	ScriptURL string
}

// Integrations holds the optional third-party integrations. An absent value
// disables the integration; there is no "configured but empty" state.
type Integrations struct {
	Search    foundation.Option[SearchCredentials]
	Analytics foundation.Option[AnalyticsSite]
}

// SearchEnabled reports whether the search UI should be rendered.
func (i Integrations) SearchEnabled() bool { return i.Search.IsSome() }

// AnalyticsEnabled reports whether the analytics script should be rendered.
func (i Integrations) AnalyticsEnabled() bool { return i.Analytics.IsSome() }

const (
	defaultSearchPagePath  = "search"
	defaultAnalyticsScript = "https://cloud.umami.is/script.js"
)

// ResolveIntegrations reads integration credentials from env.
// Search needs all three values; a partial set disables search and logs a warning.
func ResolveIntegrations(env Env) Integrations {
	var out Integrations

	appID := lookup(env, EnvSearchAppID)
	apiKey := lookup(env, EnvSearchAPIKey)
	index := lookup(env, EnvSearchIndexName)
	switch {
	case appID.IsSome() && apiKey.IsSome() && index.IsSome():
		out.Search = foundation.Some(SearchCredentials{
			AppID:            appID.Unwrap(),
			APIKey:           apiKey.Unwrap(),
			IndexName:        index.Unwrap(),
			ContextualSearch: true,
			SearchPagePath:   defaultSearchPagePath,
		})
	case appID.IsSome() || apiKey.IsSome() || index.IsSome():
		slog.Warn("Search credentials incomplete; search disabled",
			logfields.Integration("search"),
			slog.Bool(EnvSearchAppID, appID.IsSome()),
			slog.Bool(EnvSearchAPIKey, apiKey.IsSome()),
			slog.Bool(EnvSearchIndexName, index.IsSome()))
	}

	out.Analytics = foundation.MapOption(lookup(env, EnvAnalyticsSiteID), func(id string) AnalyticsSite {
		return AnalyticsSite{WebsiteID: id, ScriptURL: defaultAnalyticsScript}
	})
	return out
}

func lookup(env Env, key string) foundation.Option[string] {
	if env == nil {
		return foundation.None[string]()
	}
	v, ok := env.LookupEnv(key)
	if !ok {
		return foundation.None[string]()
	}
	return foundation.NonBlank(v)
}
