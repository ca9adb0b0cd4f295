// Package build runs the one-shot site build: validate the configuration,
// lay out static files and bundled assets, render the pages, index the docs
// and check every internal link under the configured broken-link policy.
//
// Builds are sequential and single-pass. The context is checked between
// stages, and every stage reports its duration and result to a
// metrics.Recorder.
package build
