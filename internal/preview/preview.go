// Package preview serves a built site locally and rebuilds it when the
// configuration, docs or static files change, or on a fixed interval.
package preview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
)

// Rebuild performs one full build and returns its report.
type Rebuild func(ctx context.Context) (*build.Report, error)

// Options configures Run.
type Options struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string
	// Root is the directory served, normally the build output directory.
	Root string
	// WatchDirs are watched recursively.
	WatchDirs []string
	// WatchFiles are single files such as the config overlay and .env.
	WatchFiles []string
	// Debounce is the quiet window after the last change. Defaults to 300ms.
	Debounce time.Duration
	// RebuildEvery schedules periodic rebuilds when positive.
	RebuildEvery time.Duration
	// Registry backs /metrics. Nil serves the default gatherer.
	Registry *prom.Registry
	// ShutdownTimeout bounds graceful shutdown. Defaults to 5s.
	ShutdownTimeout time.Duration
	// Ready, when set, is called with the bound address once serving starts.
	Ready func(addr string)
}

// Run builds once, serves opts.Root and rebuilds on change until ctx is
// cancelled. A failing initial build does not stop the server; /healthz
// reports it and the next successful rebuild recovers.
func Run(ctx context.Context, opts Options, rebuild Rebuild) error {
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	status := newBuildStatus()
	srv := newServer(opts.Root, opts.Registry, status)
	if err := srv.Listen(opts.Addr); err != nil {
		return err
	}

	runBuild := func(ctx context.Context) {
		rep, err := rebuild(ctx)
		status.record(rep, err)
		if err != nil {
			slog.Warn("Rebuild failed", logfields.Error(err))
			return
		}
		if rep != nil {
			slog.Info("Site rebuilt", logfields.BuildID(rep.BuildID), slog.String("status", string(rep.Status)))
		}
	}
	runBuild(ctx)

	watcher, err := newWatcher(opts.WatchDirs, opts.WatchFiles)
	if err != nil {
		_ = srv.ln.Close()
		return err
	}
	deb := newDebouncer(opts.Debounce)

	var sched *Scheduler
	if opts.RebuildEvery > 0 {
		sched, err = NewScheduler(opts.RebuildEvery, deb.fire)
		if err != nil {
			_ = watcher.Close()
			_ = srv.ln.Close()
			return err
		}
		sched.Start()
	}

	workCtx, stopWork := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		watch(workCtx, watcher, opts.WatchDirs, opts.WatchFiles, deb.Trigger)
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-workCtx.Done():
				return
			case <-deb.C:
				runBuild(workCtx)
			}
		}
	}()

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve() }()
	if opts.Ready != nil {
		opts.Ready(srv.Addr())
	}

	var result error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down preview server")
	case result = <-serveErr:
	}

	if sched != nil {
		_ = sched.Stop()
	}
	deb.Stop()
	stopWork()
	_ = watcher.Close()
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	return result
}
