package site

// Fixed destinations shared by the navbar, footer and home page.
const (
	GettingStartedPath = "/docs/getting-started/installation"
	APIReferenceURL    = "https://api.mongoloquent.com"
	SourceRepoURL      = "https://github.com/ajatdarojat45/mongoloquent"
)

const netlifyBadge = `<a href="https://www.netlify.com"><img src="https://www.netlify.com/img/global/badges/netlify-color-accent.svg" alt="Deployed by Netlify" /></a>`

// Mongoloquent returns the canonical, validated site configuration with
// integrations resolved from env.
func Mongoloquent(env Env) (*Config, error) {
	cfg := Defaults()
	cfg.Integrations = ResolveIntegrations(env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the canonical configuration literal without integrations
// and without validation. Callers overlaying user settings start here.
func Defaults() *Config {
	return &Config{
		Title:            "Mongoloquent",
		Tagline:          "A lightweight MongoDB ORM library for Javascript/Typescript",
		Favicon:          "img/favicon.png",
		URL:              "https://mongoloquent.com",
		BaseURL:          "/",
		OrganizationName: "ajatdarojat45",
		ProjectName:      "mongoloquent",
		SocialImage:      "img/mongoloquent.png",

		OnBrokenLinks:         BrokenLinksWarn,
		OnBrokenMarkdownLinks: BrokenLinksWarn,

		I18n: I18n{DefaultLocale: "en", Locales: []string{"en"}},
		Docs: Docs{
			Dir:           "docs",
			RouteBasePath: "/docs",
			Exclude:       []string{"sponsor.mdx"},
			EditURL:       "https://github.com/ajatdarojat45/mongoloquent.com/tree/main/",
		},
		Navbar: Navbar{
			Title: "Mongoloquent",
			Logo:  Logo{Alt: "Mongoloquent Logo", Src: "img/favicon.png"},
			Items: []NavEntry{
				{Label: "Getting Started", Target: To(GettingStartedPath), Position: PositionLeft},
				{Label: "API References", Target: Href(APIReferenceURL), Position: PositionLeft},
				{Kind: NavDocsVersionDropdown, Position: PositionRight},
				{Kind: NavLocaleDropdown, Position: PositionRight},
				{Label: "GitHub", Target: Href(SourceRepoURL), Position: PositionRight},
			},
		},
		Footer: Footer{
			Style: "dark",
			Groups: []FooterGroup{
				{Title: "Docs", Items: []FooterItem{
					{Label: "Getting Started", Target: To(GettingStartedPath)},
					{Label: "API References", Target: Href(APIReferenceURL)},
				}},
				{Title: "Community", Items: []FooterItem{
					{Label: "-", Target: To("#")},
				}},
				{Title: "More", Items: []FooterItem{
					{Label: "GitHub", Target: Href(SourceRepoURL)},
					{HTML: netlifyBadge},
				}},
			},
			Copyright: `Copyright © {year} <a href="https://linkedin.com/in/ajatdarojat45" target="_blank">Ajat Darojat</a>`,
		},
		Prism: Prism{Theme: "github", DarkTheme: "dracula"},
		Home: Home{
			PageTitle:          "A lightweight MongoDB ORM library for Javascript.",
			Description:        "A lightweight MongoDB ORM library for Javascript",
			HeroColor:          "#118e3c",
			CallToAction:       "Get Started",
			GettingStartedPath: GettingStartedPath,
			Support: Support{
				Heading: "Support us",
				Body: "Mongoloquent is an MIT-licensed open-source project. Hence, it grows " +
					"thanks to the sponsors and support by the amazing backers. Please, " +
					"consider supporting us!",
				SponsorsHeading: "SPONSORS",
			},
		},
	}
}
