package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
)

// exampleOverlay documents the overridable settings. Every value shown is
// the canonical default, so an untouched file changes nothing.
const exampleOverlay = `# Mongoloquent site overlay. Any key omitted here keeps its canonical value.
# ${VAR} references are expanded from the environment, .env and .env.local.
#
# Search (Algolia DocSearch) and analytics (Umami) are enabled by the
# environment only: ALGOLIA_APP_ID, ALGOLIA_API_KEY, ALGOLIA_INDEX_NAME,
# UMAMI_WEBSITE_ID.

title: Mongoloquent
tagline: A lightweight MongoDB ORM library for Javascript/Typescript
url: https://mongoloquent.com
baseUrl: /

# ignore | log | warn | throw
onBrokenLinks: warn
onBrokenMarkdownLinks: warn

i18n:
  defaultLocale: en
  locales: [en]

docs:
  path: docs
  routeBasePath: /docs
  exclude: [sponsor.mdx]

prism:
  theme: github
  darkTheme: dracula

home:
  heroColor: "#118e3c"
  callToAction: Get Started
  gettingStartedPath: /docs/getting-started/installation
`

// Init writes an example overlay file. An existing file is only replaced
// when force is set.
func Init(path string, force bool) error {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).Build()
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.WrapError(err, errors.CategoryFileSystem, "inspect config path").
			WithContext("path", path).Build()
	}
	if err := os.WriteFile(path, []byte(exampleOverlay), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write config file").
			WithContext("path", path).Build()
	}
	return nil
}
