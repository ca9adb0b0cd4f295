package commands

import (
	"context"
	"fmt"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
)

// CheckCmd implements the 'check' command: a full build into a scratch
// directory that is discarded afterwards.
type CheckCmd struct {
	Strict bool   `help:"Fail on any broken link (--no-strict follows onBrokenLinks)" default:"true" negatable:""`
	Docs   string `help:"Docs directory (overrides docs.path)"`
	Static string `help:"Static files directory" default:"static"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	rep, err := build.New(cfg, build.Options{
		DocsDir:   c.Docs,
		StaticDir: c.Static,
		DryRun:    true,
		Strict:    c.Strict,
		Recorder:  metrics.NoopRecorder{},
	}).Run(context.Background())
	w := root.out()
	if rep != nil {
		printSummary(w, rep)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, "Check passed")
	return nil
}
