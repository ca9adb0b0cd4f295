package preview

import (
	"sync"
	"time"

	"github.com/ajatdarojat45/mongoloquent.com/internal/build"
)

// HealthStatus is the coarse state reported by /healthz.
type HealthStatus string

const (
	HealthStatusStarting  HealthStatus = "starting"
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status      HealthStatus `json:"status"`
	Version     string       `json:"version"`
	Uptime      string       `json:"uptime"`
	Builds      int          `json:"builds"`
	LastBuildID string       `json:"last_build_id,omitempty"`
	LastStatus  build.Status `json:"last_build_status,omitempty"`
	LastError   string       `json:"last_error,omitempty"`
}

// buildStatus tracks the outcome of the most recent rebuilds.
type buildStatus struct {
	mu           sync.RWMutex
	started      time.Time
	builds       int
	last         *build.Report
	lastError    error
	hasGoodBuild bool
}

func newBuildStatus() *buildStatus {
	return &buildStatus{started: time.Now()}
}

func (bs *buildStatus) record(rep *build.Report, err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.builds++
	bs.last = rep
	bs.lastError = err
	if err == nil {
		bs.hasGoodBuild = true
	}
}

func (bs *buildStatus) goodBuild() bool {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.hasGoodBuild
}

func (bs *buildStatus) health(version string) HealthResponse {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	resp := HealthResponse{
		Status:  HealthStatusStarting,
		Version: version,
		Uptime:  time.Since(bs.started).Round(time.Second).String(),
		Builds:  bs.builds,
	}
	if bs.last != nil {
		resp.LastBuildID = bs.last.BuildID
		resp.LastStatus = bs.last.Status
	}
	switch {
	case bs.lastError != nil && bs.hasGoodBuild:
		resp.Status = HealthStatusDegraded
		resp.LastError = bs.lastError.Error()
	case bs.lastError != nil:
		resp.Status = HealthStatusUnhealthy
		resp.LastError = bs.lastError.Error()
	case bs.builds > 0:
		resp.Status = HealthStatusHealthy
	}
	return resp
}
