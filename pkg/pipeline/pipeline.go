// Package pipeline runs the DOT source → rendered artifact pipeline
// shared by the CLI and the render service.
//
// The pipeline is deliberately small: validate the requested engine and
// formats, then render each format through pkg/render with per-artifact
// caching. Centralizing it keeps caching and logging behavior identical
// across entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  source,
//	    Engine:  "dot",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/dotgen/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Service
// =============================================================================

const (
	// DefaultTTL is how long rendered artifacts stay cached. Rendering
	// is deterministic, so the TTL only bounds cache growth.
	DefaultTTL = 7 * 24 * time.Hour
)

// Options controls a pipeline execution.
type Options struct {
	// Source is the DOT source text to render.
	Source string

	// Engine is the layout engine name. Empty means render.DefaultEngine.
	Engine string

	// Formats are the output formats to produce. Empty means one
	// artifact in render.DefaultFormat.
	Formats []string

	// TTL overrides DefaultTTL when positive.
	TTL time.Duration
}

// ValidateAndSetDefaults normalizes opts in place.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Engine == "" {
		o.Engine = render.DefaultEngine
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{render.DefaultFormat}
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}

	if err := render.ValidateEngine(o.Engine); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Result holds the pipeline output.
type Result struct {
	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	// SourceHash identifies the rendered source (cache key component).
	SourceHash string

	// CacheHits maps format name to whether the artifact came from cache.
	CacheHits map[string]bool

	// Duration is the total pipeline time.
	Duration time.Duration
}
