package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ajatdarojat45/mongoloquent.com/internal/foundation/errors"
	"github.com/ajatdarojat45/mongoloquent.com/internal/linkverify"
)

// ReportFile is written to the output directory after every non-dry build.
const ReportFile = "build-report.json"

// StageTiming records one executed stage.
type StageTiming struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Result     string  `json:"result"`
}

// Report describes one build.
type Report struct {
	BuildID      string                  `json:"build_id"`
	Status       Status                  `json:"status"`
	StartedAt    time.Time               `json:"started_at"`
	DurationMS   float64                 `json:"duration_ms"`
	OutputDir    string                  `json:"output_dir,omitempty"`
	Stages       []StageTiming           `json:"stages"`
	Pages        []string                `json:"pages"`
	Assets       int                     `json:"assets"`
	StaticFiles  int                     `json:"static_files"`
	Docs         int                     `json:"docs"`
	Policy       string                  `json:"broken_link_policy"`
	BrokenLinks  []linkverify.BrokenLink `json:"broken_links"`
	Integrations map[string]bool         `json:"integrations"`
	Error        string                  `json:"error,omitempty"`
}

func (r *Report) write(dir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "encode build report").Build()
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ReportFile), data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write build report").
			WithContext("path", dir).Build()
	}
	return nil
}

// ReadReport loads a report written by a previous build.
func ReadReport(dir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, ReportFile))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNotFound, "read build report").
			WithContext("path", dir).Build()
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "decode build report").
			WithContext("path", dir).Build()
	}
	return &r, nil
}
