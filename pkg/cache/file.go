package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache is a directory-backed cache for CLI usage. Each entry is a
// pair of files: the raw artifact bytes and a small JSON sidecar with
// the expiration time. Artifacts are stored raw (not enveloped) because
// rendered images can be large and are already opaque bytes.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory is created if it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// meta is the sidecar stored next to each artifact.
type meta struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	dataPath, metaPath := c.paths(key)

	raw, err := os.ReadFile(metaPath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m meta
	if err := json.Unmarshal(raw, &m); err != nil {
		// Corrupt sidecar - treat as miss
		c.evict(key)
		return nil, false, nil
	}
	if !m.ExpiresAt.IsZero() && time.Now().After(m.ExpiresAt) {
		c.evict(key)
		return nil, false, nil
	}

	data, err := os.ReadFile(dataPath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	dataPath, metaPath := c.paths(key)
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return err
	}

	var m meta
	if ttl > 0 {
		m.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dataPath, data, 0o644); err != nil {
		return err
	}
	return os.WriteFile(metaPath, raw, 0o644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.evict(key)
	return nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

func (c *FileCache) evict(key string) {
	dataPath, metaPath := c.paths(key)
	_ = os.Remove(dataPath)
	_ = os.Remove(metaPath)
}

// paths converts a cache key to the artifact and sidecar file paths.
// The first 2 hash chars become a subdirectory so no single directory
// accumulates too many files.
func (c *FileCache) paths(key string) (data, metaPath string) {
	hash := Hash([]byte(key))
	base := filepath.Join(c.dir, hash[:2], hash[2:])
	return base + ".bin", base + ".json"
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
