// Package commands holds the kong command tree of mongoloquent-site.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ajatdarojat45/mongoloquent.com/internal/config"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

// Environment variables read while setting up logging.
const (
	EnvLogLevel  = "MONGOLOQUENT_LOG_LEVEL"
	EnvLogFormat = "MONGOLOQUENT_LOG_FORMAT"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration overlay" default:"site.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Build the site into an output directory"`
	Serve ServeCmd `cmd:"" help:"Serve the site locally and rebuild on change"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration overlay"`
	Show  ShowCmd  `cmd:"" name:"config" help:"Print the resolved configuration"`
	Check CheckCmd `cmd:"" help:"Validate the configuration and links without writing output"`

	// stdout receives user-facing messages. Nil means os.Stdout.
	stdout io.Writer
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(c.Verbose, os.Stderr))
	return nil
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv(EnvLogLevel); ok {
		level = config.NormalizeLogLevel(raw).SlogLevel()
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if config.NormalizeLogFormat(os.Getenv(EnvLogFormat)) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *CLI) out() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

func (c *CLI) loadConfig() (*site.Config, error) {
	return config.Load(c.Config)
}
