package version

// Version is set at build time:
// go build -ldflags "-X github.com/ajatdarojat45/mongoloquent.com/internal/version.Version=v1.2.0".
var Version = "unknown"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns a one-line description used by --version.
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildTime + ")"
}
