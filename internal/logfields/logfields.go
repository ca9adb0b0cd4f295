package logfields

import "log/slog"

// Canonical log field names shared by every package.
const (
	KeyBuildID     = "build_id"
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeyPath        = "path"
	KeyPage        = "page"
	KeyURL         = "url"
	KeyField       = "field"
	KeyLocale      = "locale"
	KeyIntegration = "integration"
	KeyPolicy      = "policy"
	KeyCount       = "count"
	KeyAddr        = "addr"
	KeyError       = "error"
)

func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Page(p string) slog.Attr { return slog.String(KeyPage, p) }
func URL(u string) slog.Attr { return slog.String(KeyURL, u) }
func Field(f string) slog.Attr { return slog.String(KeyField, f) }
func Locale(l string) slog.Attr { return slog.String(KeyLocale, l) }
func Integration(name string) slog.Attr { return slog.String(KeyIntegration, name) }
func Policy(p string) slog.Attr { return slog.String(KeyPolicy, p) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func Addr(a string) slog.Attr { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
