package preview

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/logfields"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
	"github.com/ajatdarojat45/mongoloquent.com/internal/version"
)

// Server serves a built site directory plus /healthz and /metrics.
type Server struct {
	root     string
	registry *prom.Registry
	status   *buildStatus
	http     *http.Server
	ln       net.Listener
}

func newServer(root string, registry *prom.Registry, status *buildStatus) *Server {
	s := &Server{root: root, registry: registry, status: status}
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", metrics.HTTPHandler(s.registry))
	mux.HandleFunc("/", s.handleSite)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := s.status.health(version.Version)
	code := http.StatusOK
	if resp.Status == HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// handleSite serves files from the output directory. Directory routes map to
// index.html, extensionless routes to "<route>.html", and anything else to
// 404.html with a 404 status.
func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if !s.status.goodBuild() {
		http.Error(w, "site has not been built successfully yet; see /healthz", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")

	clean := path.Clean("/" + r.URL.Path)
	if file, ok := s.resolve(clean); ok {
		http.ServeFile(w, r, file)
		return
	}

	notFound := filepath.Join(s.root, "404.html")
	data, err := os.ReadFile(notFound)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(data)
}

func (s *Server) resolve(clean string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimPrefix(clean, "/"))
	base := filepath.Join(s.root, rel)
	candidates := []string{filepath.Join(base, "index.html")}
	if rel != "" && !strings.HasSuffix(clean, "/") {
		candidates = []string{base, base + ".html", filepath.Join(base, "index.html")}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

// Listen binds addr. It fails fast so the caller can report a busy port
// before any build work starts.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapError(err, errors.CategoryServer, "bind preview address").
			WithContext("addr", addr).Build()
	}
	s.ln = ln
	return nil
}

// Addr is the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serve blocks until the server is shut down.
func (s *Server) Serve() error {
	slog.Info("Preview server listening", logfields.Addr(s.Addr()), logfields.Path(s.root))
	if err := s.http.Serve(s.ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.WrapError(err, errors.CategoryServer, "serve preview").Build()
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
