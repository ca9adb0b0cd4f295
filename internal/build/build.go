package build

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ajatdarojat45/mongoloquent.com/internal/content"
	"github.com/ajatdarojat45/mongoloquent.com/internal/features"
	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/linkverify"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
	"github.com/ajatdarojat45/mongoloquent.com/internal/observability"
	"github.com/ajatdarojat45/mongoloquent.com/internal/render"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

// GlyphDir is where the feature glyphs are written inside the output.
const GlyphDir = "img/features"

// Options configures a Builder. Zero values select the defaults.
type Options struct {
	// OutputDir receives the site. Defaults to "build".
	OutputDir string
	// DocsDir overrides the docs directory from the site configuration.
	DocsDir string
	// StaticDir is copied verbatim into the output. Defaults to "static".
	StaticDir string
	// DryRun builds into a temporary directory that is removed afterwards.
	DryRun bool
	// Strict fails the build on any broken link regardless of policy.
	Strict bool

	Features []features.Descriptor
	Recorder metrics.Recorder
	Clock    func() time.Time
}

// Builder executes site builds for one configuration.
type Builder struct {
	cfg  *site.Config
	opts Options
}

// New creates a Builder. cfg is validated again by Run.
func New(cfg *site.Config, opts Options) *Builder {
	if opts.OutputDir == "" {
		opts.OutputDir = "build"
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "static"
	}
	if opts.DocsDir == "" && cfg != nil {
		opts.DocsDir = cfg.Docs.Dir
	}
	if opts.Features == nil {
		opts.Features = features.Mongoloquent()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Builder{cfg: cfg, opts: opts}
}

// OutputDir is the directory the next non-dry build writes to.
func (b *Builder) OutputDir() string { return b.opts.OutputDir }

// run carries the state of one build across stages.
type run struct {
	*Builder
	// out is where stages write: the staging directory, or a scratch
	// directory for dry runs.
	out string
	// staged is set once the clean stage has prepared the staging directory.
	staged bool
	report *Report
	index  *content.Index
	policy site.BrokenLinkPolicy
}

// Run executes every stage in order and returns the report. The report is
// returned alongside an error whenever at least one stage ran.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rep := &Report{
		BuildID:      uuid.NewString(),
		StartedAt:    b.opts.Clock().UTC(),
		Pages:        []string{},
		BrokenLinks:  []linkverify.BrokenLink{},
		Integrations: map[string]bool{},
	}
	ctx = observability.WithBuildID(ctx, rep.BuildID)

	if b.cfg == nil {
		b.opts.Recorder.IncBuildOutcome(metrics.BuildOutcomeFailed)
		rep.Status = StatusFailed
		return rep, errors.ConfigError("build needs a site configuration").Build()
	}

	r := &run{Builder: b, out: stagingDir(b.opts.OutputDir), report: rep}
	if b.opts.DryRun {
		tmp, err := os.MkdirTemp("", "mongoloquent-site-*")
		if err != nil {
			return rep, errors.WrapError(err, errors.CategoryFileSystem, "create scratch directory").Build()
		}
		defer func() { _ = os.RemoveAll(tmp) }()
		r.out = tmp
	} else {
		rep.OutputDir = b.opts.OutputDir
	}

	observability.InfoContext(ctx, "Starting build", logfields.Path(rep.OutputDir))
	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{StageValidate, r.validate},
		{StageClean, r.clean},
		{StageStatic, r.static},
		{StageAssets, r.assets},
		{StageRender, r.render},
		{StageContent, r.content},
		{StageLinks, r.links},
	}

	var err error
	for _, st := range stages {
		if err = r.stage(ctx, st.name, st.fn); err != nil {
			break
		}
	}
	return r.finish(ctx, start, err)
}

func (r *run) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	err := fn(ctx)
	d := time.Since(start)

	result := metrics.ResultSuccess
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		result = metrics.ResultCanceled
	case err != nil:
		result = metrics.ResultFatal
	case name == StageLinks && len(r.report.BrokenLinks) > 0:
		result = metrics.ResultWarning
	}
	r.opts.Recorder.ObserveStageDuration(name, d)
	r.opts.Recorder.IncStageResult(name, result)
	r.report.Stages = append(r.report.Stages, StageTiming{
		Name:       name,
		DurationMS: float64(d.Microseconds()) / 1000,
		Result:     string(result),
	})
	if err != nil {
		observability.ErrorContext(ctx, "Stage failed", logfields.Error(err))
		return err
	}
	observability.DebugContext(ctx, "Stage complete", logfields.DurationMS(float64(d.Microseconds())/1000))
	return nil
}

func (r *run) finish(ctx context.Context, start time.Time, err error) (*Report, error) {
	rep := r.report
	d := time.Since(start)
	rep.DurationMS = float64(d.Microseconds()) / 1000

	var outcome metrics.BuildOutcomeLabel
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		rep.Status, outcome = StatusCancelled, metrics.BuildOutcomeCanceled
	case err != nil:
		rep.Status, outcome = StatusFailed, metrics.BuildOutcomeFailed
	case len(rep.BrokenLinks) > 0:
		rep.Status, outcome = StatusWarning, metrics.BuildOutcomeWarning
	default:
		rep.Status, outcome = StatusSuccess, metrics.BuildOutcomeSuccess
	}
	if err != nil {
		rep.Error = err.Error()
	}
	if !r.opts.DryRun && r.staged {
		if perr := r.publish(ctx, err); perr != nil && err == nil {
			err = perr
			rep.Status, outcome, rep.Error = StatusFailed, metrics.BuildOutcomeFailed, err.Error()
		}
	}
	r.opts.Recorder.IncBuildOutcome(outcome)
	r.opts.Recorder.ObserveBuildDuration(d)

	attrs := []slog.Attr{
		slog.String("status", string(rep.Status)),
		logfields.Count(len(rep.Pages)),
		logfields.DurationMS(rep.DurationMS),
	}
	if err != nil {
		observability.ErrorContext(ctx, "Build failed", append(attrs, logfields.Error(err))...)
		return rep, err
	}
	observability.InfoContext(ctx, "Build complete", attrs...)
	return rep, nil
}

// publish promotes the staging directory over the output directory after a
// successful build. A failed build discards the staging directory and leaves
// the previous site in place; only its report is replaced. The returned error
// is a publishing failure, never buildErr.
func (r *run) publish(ctx context.Context, buildErr error) error {
	if buildErr != nil {
		abortStaging(r.out)
		err := os.MkdirAll(r.opts.OutputDir, 0o755)
		if err == nil {
			err = r.report.write(r.opts.OutputDir)
		}
		if err != nil {
			observability.WarnContext(ctx, "Failed to write build report", logfields.Error(err))
		}
		return nil
	}
	if err := r.report.write(r.out); err != nil {
		abortStaging(r.out)
		return err
	}
	if err := promoteStaging(r.out, r.opts.OutputDir); err != nil {
		abortStaging(r.out)
		return err
	}
	observability.DebugContext(ctx, "Promoted staging directory", logfields.Path(r.opts.OutputDir))
	return nil
}

func (r *run) validate(context.Context) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	r.policy = r.cfg.OnBrokenLinks
	if r.opts.Strict {
		r.policy = site.BrokenLinksThrow
	}
	r.report.Policy = string(r.policy)
	r.report.Integrations["search"] = r.cfg.Integrations.SearchEnabled()
	r.report.Integrations["analytics"] = r.cfg.Integrations.AnalyticsEnabled()
	for name, on := range r.report.Integrations {
		r.opts.Recorder.SetIntegrationEnabled(name, on)
	}
	return nil
}

func (r *run) clean(context.Context) error {
	if r.opts.DryRun {
		return cleanOutput(r.out, r.opts.StaticDir, r.opts.DocsDir)
	}
	if err := guardOutput(r.opts.OutputDir, r.opts.StaticDir, r.opts.DocsDir); err != nil {
		return err
	}
	if err := cleanOutput(r.out, r.opts.StaticDir, r.opts.DocsDir); err != nil {
		return err
	}
	r.staged = true
	return nil
}

func (r *run) static(ctx context.Context) error {
	info, err := os.Stat(r.opts.StaticDir)
	if stderrors.Is(err, fs.ErrNotExist) {
		observability.DebugContext(ctx, "No static directory", logfields.Path(r.opts.StaticDir))
		return nil
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "inspect static directory").
			WithContext("path", r.opts.StaticDir).Build()
	}
	if !info.IsDir() {
		return errors.FileSystemError("static path is not a directory").
			WithContext("path", r.opts.StaticDir).Build()
	}
	n, err := copyTree(os.DirFS(r.opts.StaticDir), r.out)
	r.report.StaticFiles = n
	return err
}

func (r *run) assets(context.Context) error {
	n, err := copyTree(render.Assets(), r.out)
	if err != nil {
		return err
	}
	for _, g := range features.Glyphs() {
		svg, err := g.SVG()
		if err != nil {
			return errors.WrapError(err, errors.CategoryBuild, "read glyph").Fatal().Build()
		}
		if err := writeFile(r.out, path.Join(GlyphDir, string(g)+".svg"), svg); err != nil {
			return err
		}
		n++
	}
	r.report.Assets = n
	return nil
}

func (r *run) render(ctx context.Context) error {
	renderer, err := render.NewRenderer(r.cfg, r.opts.Features, render.WithClock(r.opts.Clock))
	if err != nil {
		return err
	}
	for _, p := range renderer.Pages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := p.Render(&buf); err != nil {
			return err
		}
		if err := writeFile(r.out, p.Name, buf.Bytes()); err != nil {
			return err
		}
		r.report.Pages = append(r.report.Pages, p.Name)
		observability.DebugContext(ctx, "Rendered page", logfields.Page(p.Name))
	}
	r.opts.Recorder.AddPagesRendered(len(r.report.Pages))
	return nil
}

func (r *run) content(context.Context) error {
	idx, err := content.Scan(r.opts.DocsDir, r.cfg.Docs)
	if err != nil {
		return err
	}
	r.index = idx
	r.report.Docs = idx.Len()
	return nil
}

func (r *run) links(ctx context.Context) error {
	v := &linkverify.Verifier{
		SiteURL: r.cfg.URL,
		BaseURL: r.cfg.BaseURL,
		Known: func(route string) bool {
			return r.index.Has(route) || routeExists(r.out, route)
		},
	}

	var broken []linkverify.BrokenLink
	for _, name := range r.report.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := os.Open(filepath.Join(r.out, name))
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "open rendered page").
				WithContext("page", name).Build()
		}
		found, err := v.VerifyPage(pageRoute(name), f)
		_ = f.Close()
		if err != nil {
			return err
		}
		broken = append(broken, found...)
	}
	broken = linkverify.MergeTargets(broken, v.VerifyTargets(r.cfg))

	r.report.BrokenLinks = append(r.report.BrokenLinks, broken...)
	r.opts.Recorder.AddBrokenLinks(string(r.policy), len(broken))
	if len(broken) > 0 {
		observability.InfoContext(ctx, "Link check found broken links",
			logfields.Count(len(broken)), logfields.Policy(string(r.policy)))
	}
	return linkverify.Apply(r.policy, broken)
}

// pageRoute maps an output file name to the route it is served under.
func pageRoute(name string) string {
	if name == "index.html" {
		return "/"
	}
	if path.Base(name) == "index.html" {
		return "/" + path.Dir(name) + "/"
	}
	return "/" + name
}
