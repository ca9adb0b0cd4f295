package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
	"github.com/ajatdarojat45/mongoloquent.com/internal/metrics"
)

func writeSite(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>home</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "404.html"), []byte("<h1>missing</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "css", "custom.css"), []byte("body{}"), 0o600))
}

func builtServer(t *testing.T) (*Server, *buildStatus) {
	t.Helper()
	root := t.TempDir()
	writeSite(t, root)
	status := newBuildStatus()
	status.record(&build.Report{BuildID: "b-1", Status: build.StatusSuccess}, nil)
	reg := prom.NewRegistry()
	metrics.NewPrometheusRecorder(reg).AddPagesRendered(2)
	return newServer(root, reg, status), status
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServerServesSite(t *testing.T) {
	srv, _ := builtServer(t)
	h := srv.Handler()

	rec := get(t, h, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "home")
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	rec = get(t, h, "/assets/css/custom.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestServerFallsBackTo404Page(t *testing.T) {
	srv, _ := builtServer(t)
	rec := get(t, srv.Handler(), "/docs/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing")
}

func TestServerRejectsTraversal(t *testing.T) {
	srv, _ := builtServer(t)
	rec := httptest.NewRecorder()
	srv.handleSite(rec, httptest.NewRequest(http.MethodGet, "/../../etc/passwd", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing")
}

func TestServerRejectsWrites(t *testing.T) {
	srv, _ := builtServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServerUnavailableBeforeFirstGoodBuild(t *testing.T) {
	root := t.TempDir()
	status := newBuildStatus()
	status.record(&build.Report{Status: build.StatusFailed}, fmt.Errorf("boom"))
	srv := newServer(root, prom.NewRegistry(), status)

	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.Handler(), "/").Code)

	rec := get(t, srv.Handler(), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, HealthStatusUnhealthy, resp.Status)
	assert.Equal(t, "boom", resp.LastError)
}

func TestHealthz(t *testing.T) {
	srv, status := builtServer(t)

	rec := get(t, srv.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, HealthStatusHealthy, resp.Status)
	assert.Equal(t, "b-1", resp.LastBuildID)
	assert.Equal(t, 1, resp.Builds)

	status.record(&build.Report{BuildID: "b-2", Status: build.StatusFailed}, fmt.Errorf("broken links"))
	rec = get(t, srv.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, HealthStatusDegraded, resp.Status)
	assert.Equal(t, "b-2", resp.LastBuildID)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := builtServer(t)
	rec := get(t, srv.Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mongoloquent_site_pages_rendered_total 2")
}

func TestShouldIgnoreEvent(t *testing.T) {
	assert.True(t, shouldIgnoreEvent("/tmp/.hidden.md"))
	assert.True(t, shouldIgnoreEvent("/tmp/#foo#"))
	assert.True(t, shouldIgnoreEvent("/tmp/foo.swp"))
	assert.True(t, shouldIgnoreEvent("/tmp/foo.md~"))
	assert.True(t, shouldIgnoreEvent("/tmp/.DS_Store"))
	assert.False(t, shouldIgnoreEvent("/tmp/visible.md"))
	assert.False(t, shouldIgnoreEvent("/tmp/.env.local"))
}

func TestRelevantEvent(t *testing.T) {
	roots := []string{"/site/docs"}
	files := []string{"/site/site.yaml"}

	assert.True(t, relevantEvent(fsnotify.Event{Name: "/site/docs/a/b.md"}, roots, files))
	assert.True(t, relevantEvent(fsnotify.Event{Name: "/site/site.yaml"}, roots, files))
	assert.False(t, relevantEvent(fsnotify.Event{Name: "/site/README.md"}, roots, files))
	assert.False(t, relevantEvent(fsnotify.Event{Name: "/site/docs-old/x.md"}, roots, files))
	assert.False(t, relevantEvent(fsnotify.Event{Name: "/site/docs/.x.swp"}, roots, files))
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.Stop()
	for i := 0; i < 5; i++ {
		d.Trigger()
	}

	select {
	case <-d.C:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced request never fired")
	}
	select {
	case <-d.C:
		t.Fatal("burst produced more than one request")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewSchedulerRejectsZeroInterval(t *testing.T) {
	_, err := NewScheduler(0, func() {})
	require.Error(t, err)
}

func TestSchedulerRequestsRebuilds(t *testing.T) {
	var calls atomic.Int32
	s, err := NewScheduler(20*time.Millisecond, func() { calls.Add(1) })
	require.NoError(t, err)
	s.Start()
	defer func() { _ = s.Stop() }()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
}

func TestRunRebuildsOnChange(t *testing.T) {
	root := t.TempDir()
	docs := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))

	var builds atomic.Int32
	rebuild := func(context.Context) (*build.Report, error) {
		n := builds.Add(1)
		writeSite(t, root)
		return &build.Report{BuildID: fmt.Sprintf("b-%d", n), Status: build.StatusSuccess}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{
			Addr:      "127.0.0.1:0",
			Root:      root,
			WatchDirs: []string{docs},
			Debounce:  20 * time.Millisecond,
			Registry:  prom.NewRegistry(),
			Ready:     func(addr string) { addrCh <- addr },
		}, rebuild)
	}()

	var addr string
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("preview server did not start")
	}
	assert.Equal(t, int32(1), builds.Load())

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "home")

	require.NoError(t, os.WriteFile(filepath.Join(docs, "intro.md"), []byte("# Intro\n"), 0o600))
	assert.Eventually(t, func() bool { return builds.Load() >= 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("preview did not shut down")
	}
}

func TestRunFailsOnBusyAddress(t *testing.T) {
	srv, _ := builtServer(t)
	require.NoError(t, srv.Listen("127.0.0.1:0"))
	defer func() { _ = srv.ln.Close() }()

	err := Run(context.Background(), Options{Addr: srv.Addr(), Root: t.TempDir()}, func(context.Context) (*build.Report, error) {
		t.Fatal("rebuild must not run when the address is busy")
		return nil, nil
	})
	require.Error(t, err)
}
