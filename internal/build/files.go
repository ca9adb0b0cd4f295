package build

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
)

// copyTree copies every regular file of src into dst, preserving layout.
// It returns the number of files written.
func copyTree(src fs.FS, dst string) (int, error) {
	count := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(src, p, target); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, errors.WrapError(err, errors.CategoryFileSystem, "copy files").
			WithContext("path", dst).Build()
	}
	return count, nil
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeFile(dir, name string, data []byte) error {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create directory").
			WithContext("path", filepath.Dir(target)).Build()
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write file").
			WithContext("path", target).Build()
	}
	return nil
}

// stagingDir is the sibling directory a build writes to before it replaces
// the output directory.
func stagingDir(output string) string {
	return filepath.Clean(output) + "_stage"
}

// guardOutput refuses output paths that would wipe a source tree, the
// working directory or the filesystem root.
func guardOutput(dir string, protected ...string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "resolve output directory").Build()
	}
	if abs == filepath.Dir(abs) {
		return errors.ConfigError("refusing to clean the filesystem root").WithContext("path", dir).Build()
	}
	cwd, _ := os.Getwd()
	for _, p := range append(protected, cwd) {
		if p == "" {
			continue
		}
		pa, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if abs == pa || strings.HasPrefix(pa+string(filepath.Separator), abs+string(filepath.Separator)) {
			return errors.ConfigError("output directory would overwrite a source directory").
				WithContext("path", dir).WithContext("source", p).Build()
		}
	}
	return nil
}

// cleanOutput empties dir after guardOutput accepts it.
func cleanOutput(dir string, protected ...string) error {
	if err := guardOutput(dir, protected...); err != nil {
		return err
	}
	abs, _ := filepath.Abs(dir)
	if err := os.RemoveAll(abs); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "clean output directory").
			WithContext("path", dir).Build()
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create output directory").
			WithContext("path", dir).Build()
	}
	return nil
}

// promoteStaging replaces output with stage: the current output moves to
// "<output>.prev", stage is renamed into place and the backup is removed.
// The backup is restored when the second rename fails.
func promoteStaging(stage, output string) error {
	prev := filepath.Clean(output) + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "remove previous output backup").
			WithContext("path", prev).Build()
	}
	hadOutput := false
	if _, err := os.Stat(output); err == nil {
		if err := os.Rename(output, prev); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "move previous output aside").
				WithContext("path", output).Build()
		}
		hadOutput = true
	}
	if err := os.Rename(stage, output); err != nil {
		if hadOutput {
			_ = os.Rename(prev, output)
		}
		return errors.WrapError(err, errors.CategoryFileSystem, "promote staging directory").
			WithContext("path", output).WithContext("staging", stage).Build()
	}
	if hadOutput {
		if err := os.RemoveAll(prev); err != nil {
			slog.Warn("Failed to remove previous output", logfields.Path(prev), logfields.Error(err))
		}
	}
	return nil
}

// abortStaging removes a staging directory left by a failed build.
func abortStaging(stage string) {
	if err := os.RemoveAll(stage); err != nil {
		slog.Warn("Failed to remove staging directory", logfields.Path(stage), logfields.Error(err))
	}
}

// routeExists reports whether route maps to a file in dir: the file itself,
// "<route>.html" or "<route>/index.html".
func routeExists(dir, route string) bool {
	clean := strings.Trim(route, "/")
	candidates := []string{filepath.Join(dir, "index.html")}
	if clean != "" {
		base := filepath.Join(dir, filepath.FromSlash(clean))
		candidates = []string{base, base + ".html", filepath.Join(base, "index.html")}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
