package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site" default:"build"`
	Strict bool   `help:"Fail on any broken link regardless of onBrokenLinks"`
	Docs   string `help:"Docs directory (overrides docs.path)"`
	Static string `help:"Static files copied verbatim into the output" default:"static"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	w := root.out()
	_, _ = fmt.Fprintln(w, "Starting Mongoloquent site build")
	rep, err := b.run(context.Background(), root, metrics.NoopRecorder{})
	if rep != nil {
		printSummary(w, rep)
	}
	if err != nil {
		_, _ = fmt.Fprintln(w, "Build failed")
		return err
	}
	_, _ = fmt.Fprintf(w, "Site written to %s\n", b.Output)
	return nil
}

func (b *BuildCmd) options(rec metrics.Recorder) build.Options {
	return build.Options{
		OutputDir: b.Output,
		DocsDir:   b.Docs,
		StaticDir: b.Static,
		Strict:    b.Strict,
		Recorder:  rec,
	}
}

func (b *BuildCmd) run(ctx context.Context, root *CLI, rec metrics.Recorder) (*build.Report, error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return nil, err
	}
	return build.New(cfg, b.options(rec)).Run(ctx)
}

func printSummary(w io.Writer, rep *build.Report) {
	_, _ = fmt.Fprintf(w, "Build %s: %s in %.0fms\n", rep.BuildID, rep.Status, rep.DurationMS)
	_, _ = fmt.Fprintf(w, "  pages: %d, assets: %d, static files: %d, docs: %d\n",
		len(rep.Pages), rep.Assets, rep.StaticFiles, rep.Docs)
	if len(rep.BrokenLinks) > 0 {
		_, _ = fmt.Fprintf(w, "  broken links (%s):\n", rep.Policy)
		for _, bl := range rep.BrokenLinks {
			_, _ = fmt.Fprintf(w, "    %s\n", bl.String())
		}
	}
	if rep.OutputDir != "" {
		_, _ = fmt.Fprintf(w, "  report: %s\n", filepath.Join(rep.OutputDir, build.ReportFile))
	}
}
