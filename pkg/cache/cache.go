// Package cache provides byte-level caching for rendered artifacts.
//
// Rendering DOT source through a layout engine is deterministic, so
// artifacts are cached under a key derived from the source hash plus
// the rendering parameters. Three backends are provided:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: redis-backed, for the render service
//   - NullCache: no-op, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts as opaque byte slices.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact. sourceHash
// is the [Hash] of the DOT source; engine and format are the rendering
// parameters that affect the output bytes.
func ArtifactKey(sourceHash, engine, format string) string {
	return hashKey("artifact", sourceHash, engine, format)
}
