// Package metrics records site build metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics can be
// switched on without nil checks anywhere in the build:
//
//	b := build.New(cfg, build.Options{Recorder: metrics.NewPrometheusRecorder(reg)})
//
// The preview server exposes the registry through HTTPHandler on /metrics.
package metrics
