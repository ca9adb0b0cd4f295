// Package config layers a YAML overlay and the process environment on top of
// the canonical Mongoloquent site configuration.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

// DefaultPath is the overlay file looked up when no path is given.
const DefaultPath = "site.yaml"

type loadOptions struct {
	env      site.Env
	envFiles []string
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

// WithEnv replaces the process environment as the source of ${VAR}
// expansion and integration credentials. Env files are still layered below it.
func WithEnv(env site.Env) LoadOption {
	return func(o *loadOptions) { o.env = env }
}

// WithEnvFiles replaces the default .env/.env.local lookup.
func WithEnvFiles(paths ...string) LoadOption {
	return func(o *loadOptions) { o.envFiles = paths }
}

// Load returns the canonical configuration with the overlay at path applied,
// ${VAR} references expanded and integrations resolved. A missing overlay
// file is not an error. The result is validated.
func Load(path string, opts ...LoadOption) (*site.Config, error) {
	o := loadOptions{env: site.OSEnv{}, envFiles: []string{".env", ".env.local"}}
	for _, opt := range opts {
		opt(&o)
	}

	env, err := withEnvFiles(o.env, o.envFiles)
	if err != nil {
		return nil, err
	}

	cfg := site.Defaults()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		slog.Debug("No config overlay, using canonical configuration", logfields.Path(path))
	case err != nil:
		return nil, errors.WrapError(err, errors.CategoryConfig, "read config overlay").
			WithContext("path", path).Fatal().Build()
	default:
		if err := applyOverlay(cfg, data, env); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "parse config overlay").
				WithContext("path", path).Fatal().Build()
		}
		slog.Debug("Applied config overlay", logfields.Path(path))
	}

	cfg.Integrations = site.ResolveIntegrations(env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} references. Bare "$" is literal text, so copy
// such as "$5 sponsors" survives; unset variables expand to "".
func expandEnv(data []byte, env site.Env) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		v, _ := env.LookupEnv(string(ref[2 : len(ref)-1]))
		return []byte(v)
	})
}

func applyOverlay(cfg *site.Config, data []byte, env site.Env) error {
	dec := yaml.NewDecoder(bytes.NewReader(expandEnv(data, env)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}
