// Package render turns a site.Config and the feature list into static HTML
// pages: the home page composition, the 404 page and the shared chrome
// (navbar, footer, integration snippets).
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/ajatdarojat45/mongoloquent.com/internal/features"
	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/markup"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// StylesheetPath is the site-relative location of the bundled stylesheet.
const StylesheetPath = "assets/css/custom.css"

// Assets returns the static files every build writes next to the pages,
// rooted so that StylesheetPath resolves inside it.
func Assets() fs.FS { return assetFS }

// Renderer renders pages for one configuration. It holds no mutable state
// and is safe for concurrent use.
type Renderer struct {
	cfg      *site.Config
	features []features.Descriptor
	md       markup.Renderer
	now      func() time.Time
	tmpl     *template.Template
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithClock fixes the clock used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithMarkup replaces the inline Markdown renderer.
func WithMarkup(md markup.Renderer) Option {
	return func(r *Renderer) { r.md = md }
}

// NewRenderer parses the page templates. cfg must already be validated.
func NewRenderer(cfg *site.Config, list []features.Descriptor, opts ...Option) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.RenderError("renderer needs a site configuration").Build()
	}
	tmpl, err := template.New("pages").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "parse page templates").Fatal().Build()
	}
	r := &Renderer{
		cfg:      cfg,
		features: list,
		md:       markup.New(),
		now:      time.Now,
		tmpl:     tmpl,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Home writes the home page: header banner, feature section, support block.
func (r *Renderer) Home(w io.Writer) error {
	body, err := r.homeBody()
	if err != nil {
		return err
	}
	title := r.cfg.Title
	if r.cfg.Home.PageTitle != "" {
		title = r.cfg.Title + " - " + r.cfg.Home.PageTitle
	}
	return r.page(w, "index.html", title, r.cfg.Home.Description, "/", body)
}

// NotFound writes the 404 page with the same chrome.
func (r *Renderer) NotFound(w io.Writer) error {
	var buf bytes.Buffer
	data := map[string]string{
		"Title":    r.cfg.Title,
		"HomeHref": r.cfg.Resolve(site.To("/")),
		"DocsHref": r.cfg.GettingStarted(),
	}
	if err := r.tmpl.ExecuteTemplate(&buf, "notfound", data); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "render 404 body").Fatal().Build()
	}
	return r.page(w, "404.html", "Page Not Found | "+r.cfg.Title, r.cfg.Home.Description, "/404.html", safe(buf.String()))
}

func (r *Renderer) homeBody() (template.HTML, error) {
	section, err := features.Section(r.features, r.md)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "render feature section").Fatal().Build()
	}
	supportBody, err := r.md.Inline(r.cfg.Home.Support.Body)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "render support copy").Fatal().Build()
	}

	sponsors := make([]linkView, 0, len(r.cfg.Home.Support.Sponsors))
	for _, s := range r.cfg.Home.Support.Sponsors {
		sponsors = append(sponsors, r.link(s.Name, s.Target))
	}

	data := homeView{
		Title:     r.cfg.Title,
		Tagline:   r.cfg.Tagline,
		HeroColor: r.cfg.Home.HeroColor,
		CTALabel:  r.cfg.Home.CallToAction,
		CTAHref:   r.cfg.GettingStarted(),
		Features:  section,
		Support: supportView{
			Heading:         r.cfg.Home.Support.Heading,
			Body:            supportBody,
			SponsorsHeading: r.cfg.Home.Support.SponsorsHeading,
			Sponsors:        sponsors,
		},
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "home", data); err != nil {
		return "", errors.WrapError(err, errors.CategoryRender, "render home body").Fatal().Build()
	}
	return safe(buf.String()), nil
}

func (r *Renderer) page(w io.Writer, name, title, description, route string, main template.HTML) error {
	data := r.layout(title, description, route, main)
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "render layout").
			Fatal().WithContext("page", name).Build()
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write page").WithContext("page", name).Build()
	}
	return nil
}

// Page is one output file produced by the renderer.
type Page struct {
	Name   string
	Route  string
	Render func(io.Writer) error
}

// Pages lists every page this renderer produces, in write order.
func (r *Renderer) Pages() []Page {
	return []Page{
		{Name: "index.html", Route: "/", Render: r.Home},
		{Name: "404.html", Route: "/404.html", Render: r.NotFound},
	}
}

func safe(s string) template.HTML {
	return template.HTML(s) // #nosec G203 -- produced by html/template
}

func (r *Renderer) year() int { return r.now().Year() }
