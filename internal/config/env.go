package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/site"
)

// layeredEnv answers from the primary environment first and falls back to
// values read from env files. The process environment is never modified.
type layeredEnv struct {
	primary site.Env
	files   map[string]string
}

func (l layeredEnv) LookupEnv(key string) (string, bool) {
	if l.primary != nil {
		if v, ok := l.primary.LookupEnv(key); ok {
			return v, true
		}
	}
	v, ok := l.files[key]
	return v, ok
}

// withEnvFiles reads the given dotenv files in order, later files overriding
// earlier ones. Missing files are skipped.
func withEnvFiles(primary site.Env, paths []string) (site.Env, error) {
	merged := map[string]string{}
	for _, p := range paths {
		if _, err := os.Stat(p); stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(p)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "read env file").
				WithContext("path", p).Fatal().Build()
		}
		for k, v := range values {
			merged[k] = v
		}
		slog.Debug("Loaded environment file", logfields.Path(p), logfields.Count(len(values)))
	}
	if len(merged) == 0 {
		return primary, nil
	}
	return layeredEnv{primary: primary, files: merged}, nil
}
