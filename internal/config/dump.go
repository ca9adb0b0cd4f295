package config

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

const redacted = "[redacted]"

type searchDump struct {
	Enabled          bool   `yaml:"enabled"`
	AppID            string `yaml:"appId,omitempty"`
	APIKey           string `yaml:"apiKey,omitempty"`
	IndexName        string `yaml:"indexName,omitempty"`
	ContextualSearch bool   `yaml:"contextualSearch,omitempty"`
	SearchPagePath   string `yaml:"searchPagePath,omitempty"`
}

type analyticsDump struct {
	Enabled   bool   `yaml:"enabled"`
	WebsiteID string `yaml:"websiteId,omitempty"`
	ScriptURL string `yaml:"scriptUrl,omitempty"`
}

type integrationsDump struct {
	Search    searchDump    `yaml:"search"`
	Analytics analyticsDump `yaml:"analytics"`
}

type dumpView struct {
	site.Config  `yaml:",inline"`
	Integrations integrationsDump `yaml:"integrations"`
}

// Dump renders the resolved configuration as YAML. Absent integrations show
// as "enabled: false" with no credential keys; API keys are redacted.
func Dump(cfg *site.Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.ConfigError("no configuration to dump").Build()
	}
	view := dumpView{Config: *cfg}
	if s, ok := cfg.Integrations.Search.Get(); ok {
		view.Integrations.Search = searchDump{
			Enabled:          true,
			AppID:            s.AppID,
			APIKey:           redacted,
			IndexName:        s.IndexName,
			ContextualSearch: s.ContextualSearch,
			SearchPagePath:   s.SearchPagePath,
		}
	}
	if a, ok := cfg.Integrations.Analytics.Get(); ok {
		view.Integrations.Analytics = analyticsDump{Enabled: true, WebsiteID: a.WebsiteID, ScriptURL: a.ScriptURL}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "encode configuration").Build()
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "encode configuration").Build()
	}
	return buf.Bytes(), nil
}
