package site

import (
	"strconv"
	"strings"
)

// Prism selects the code highlighting themes for light and dark mode.
type Prism struct {
	Theme     string `yaml:"theme"`
	DarkTheme string `yaml:"darkTheme"`
}

// I18n lists the locales the site is built for. The list is fixed at build
// time; there is no runtime negotiation.
type I18n struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

// Docs describes the documentation content set consumed for link checking.
type Docs struct {
	Dir           string   `yaml:"path"`
	RouteBasePath string   `yaml:"routeBasePath"`
	Exclude       []string `yaml:"exclude,omitempty"`
	EditURL       string   `yaml:"editUrl,omitempty"`
	Versions      []string `yaml:"versions,omitempty"`
}

// Sponsor is one entry in the home page sponsor list.
type Sponsor struct {
	Name   string `yaml:"name"`
	Target Target `yaml:",inline"`
}

// Support is the static support/sponsorship block of the home page.
type Support struct {
	Heading         string    `yaml:"heading"`
	Body            string    `yaml:"body"`
	SponsorsHeading string    `yaml:"sponsorsHeading"`
	Sponsors        []Sponsor `yaml:"sponsors,omitempty"`
}

// Home configures the home page composition.
type Home struct {
	PageTitle          string  `yaml:"pageTitle"`
	Description        string  `yaml:"description"`
	HeroColor          string  `yaml:"heroColor"`
	CallToAction       string  `yaml:"callToAction"`
	GettingStartedPath string  `yaml:"gettingStartedPath"`
	Support            Support `yaml:"support"`
}

// Config is the process-wide, read-only site configuration.
type Config struct {
	Title            string `yaml:"title"`
	Tagline          string `yaml:"tagline"`
	Favicon          string `yaml:"favicon"`
	URL              string `yaml:"url"`
	BaseURL          string `yaml:"baseUrl"`
	OrganizationName string `yaml:"organizationName,omitempty"`
	ProjectName      string `yaml:"projectName,omitempty"`
	SocialImage      string `yaml:"image,omitempty"`

	OnBrokenLinks         BrokenLinkPolicy `yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `yaml:"onBrokenMarkdownLinks"`

	I18n   I18n   `yaml:"i18n"`
	Docs   Docs   `yaml:"docs"`
	Navbar Navbar `yaml:"navbar"`
	Footer Footer `yaml:"footer"`
	Prism  Prism  `yaml:"prism"`
	Home   Home   `yaml:"home"`

	Integrations Integrations `yaml:"-"`
}

// Resolve turns a target into an href: internal paths are prefixed with
// BaseURL, external URLs are returned unchanged.
func (c *Config) Resolve(t Target) string {
	if t.IsExternal() {
		return t.URL
	}
	return joinBase(c.BaseURL, t.Path)
}

// Asset resolves a site-relative asset path such as "img/favicon.png".
func (c *Config) Asset(p string) string {
	if isAbsoluteURL(p) {
		return p
	}
	return joinBase(c.BaseURL, "/"+strings.TrimPrefix(p, "/"))
}

// AbsoluteURL returns the canonical absolute URL for a site-relative path.
func (c *Config) AbsoluteURL(p string) string {
	return strings.TrimSuffix(c.URL, "/") + c.Asset(p)
}

// CopyrightHTML returns the copyright rich text with "{year}" substituted.
func (c *Config) CopyrightHTML(year int) string {
	return strings.ReplaceAll(c.Footer.Copyright, "{year}", strconv.Itoa(year))
}

// GettingStarted returns the resolved href of the primary call to action.
func (c *Config) GettingStarted() string {
	return c.Resolve(To(c.Home.GettingStartedPath))
}
