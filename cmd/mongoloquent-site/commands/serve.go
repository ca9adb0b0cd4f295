package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
	"github.com/ajatdarojat45/mongoloquent.com/internal/preview"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	BuildCmd `embed:""`

	Port         int           `short:"p" help:"Port to listen on" default:"3000"`
	Host         string        `help:"Interface to bind" default:"127.0.0.1"`
	Debounce     time.Duration `help:"Quiet period before a rebuild" default:"300ms"`
	RebuildEvery time.Duration `name:"rebuild-every" help:"Also rebuild on this interval (0 disables)" default:"0s"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.serve(ctx, root, nil)
}

func (s *ServeCmd) serve(ctx context.Context, root *CLI, ready func(addr string)) error {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	docsDir := s.Docs
	if docsDir == "" {
		if cfg, err := root.loadConfig(); err == nil {
			docsDir = cfg.Docs.Dir
		}
	}

	w := root.out()
	if ready == nil {
		ready = func(addr string) {
			_, _ = fmt.Fprintf(w, "Serving %s at http://%s/ (Ctrl+C to stop)\n", s.Output, addr)
		}
	}

	return preview.Run(ctx, preview.Options{
		Addr:         fmt.Sprintf("%s:%d", s.Host, s.Port),
		Root:         s.Output,
		WatchDirs:    []string{docsDir, s.Static},
		WatchFiles:   []string{root.Config, ".env", ".env.local"},
		Debounce:     s.Debounce,
		RebuildEvery: s.RebuildEvery,
		Registry:     reg,
		Ready:        ready,
	}, func(ctx context.Context) (*build.Report, error) {
		return s.run(ctx, root, rec)
	})
}
