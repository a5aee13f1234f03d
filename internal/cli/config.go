package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/render"
)

// Config holds user-adjustable defaults, loaded from config.toml in the
// XDG config directory (~/.config/dotgen/config.toml). Command-line
// flags override config values.
type Config struct {
	// Engine is the default layout engine for render and view.
	Engine string `toml:"engine"`
	// Formats is the default output format list for render.
	Formats []string `toml:"formats"`
	// CacheTTLDays is how long cached artifacts stay valid. Zero means
	// the pipeline default.
	CacheTTLDays int `toml:"cache_ttl_days"`
	// RedisAddr, when set, makes serve use a Redis artifact cache
	// instead of the file cache.
	RedisAddr string `toml:"redis_addr"`
	// ListenAddr is the default bind address for serve.
	ListenAddr string `toml:"listen_addr"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		Engine:     render.DefaultEngine,
		Formats:    []string{render.DefaultFormat},
		ListenAddr: ":8080",
	}
}

// LoadConfig reads config.toml from the config directory. A missing
// file is not an error: built-in defaults are returned. Unset fields
// fall back to their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Engine == "" {
		cfg.Engine = render.DefaultEngine
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{render.DefaultFormat}
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}

// MustLoadConfig is LoadConfig falling back to built-in defaults on any
// error. Commands that care about config problems use LoadConfig.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// TTL returns the configured cache lifetime, or the pipeline default.
func (c Config) TTL() time.Duration {
	if c.CacheTTLDays <= 0 {
		return pipeline.DefaultTTL
	}
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}
