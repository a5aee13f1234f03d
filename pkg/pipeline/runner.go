package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotgen/pkg/cache"
	"github.com/matzehuels/dotgen/pkg/observability"
	"github.com/matzehuels/dotgen/pkg/render"
)

// Runner executes the render pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// A nil cache disables caching (NullCache); a nil logger uses the
// package default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute renders opts.Source into every requested format, consulting
// the artifact cache first.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Engine, opts.Formats)

	result := &Result{
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
		CacheHits:  make(map[string]bool, len(opts.Formats)),
		SourceHash: cache.Hash([]byte(opts.Source)),
	}

	for _, format := range opts.Formats {
		data, hit, err := r.renderOne(ctx, opts, result.SourceHash, format)
		if err != nil {
			observability.Render().OnRenderComplete(ctx, opts.Engine, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheHits[format] = hit
	}

	result.Duration = time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Engine, opts.Formats, result.Duration, nil)
	r.Logger.Info("rendered artifacts",
		"engine", opts.Engine,
		"formats", opts.Formats,
		"duration", result.Duration.Round(time.Millisecond))
	return result, nil
}

// renderOne produces a single artifact, consulting the cache first.
func (r *Runner) renderOne(ctx context.Context, opts Options, sourceHash, format string) ([]byte, bool, error) {
	key := cache.ArtifactKey(sourceHash, opts.Engine, format)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		r.Logger.Debug("artifact cache hit", "format", format, "key", key)
		observability.Cache().OnCacheHit(ctx, format)
		return data, true, nil
	} else if err != nil {
		// Cache trouble never fails the pipeline; render fresh instead.
		r.Logger.Warn("artifact cache read failed", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, format)

	data, err := render.Render(ctx, opts.Source, opts.Engine, format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		r.Logger.Warn("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}
