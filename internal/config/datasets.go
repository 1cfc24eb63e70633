package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	EnvDatasetsBasePath    = "DATASETS_BASE_PATH"
	EnvDatasetsCacheMaxAge = "DATASETS_CACHE_MAX_AGE"
)

// DatasetsConfig contains data directory configuration.
type DatasetsConfig struct {
	// BasePath is the directory data files are served from.
	// Default: "data"
	BasePath string `toml:"base_path"`

	// CacheMaxAge sets the Cache-Control max-age of served files.
	// Default: "1h"
	CacheMaxAge string `toml:"cache_max_age"`
}

func (c *DatasetsConfig) CacheMaxAgeDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheMaxAge)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the datasets configuration.
// BasePath is resolved to an absolute path.
func (c *DatasetsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *DatasetsConfig) Merge(overlay *DatasetsConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.CacheMaxAge != "" {
		c.CacheMaxAge = overlay.CacheMaxAge
	}
}

func (c *DatasetsConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "data"
	}
	if c.CacheMaxAge == "" {
		c.CacheMaxAge = "1h"
	}
}

func (c *DatasetsConfig) loadEnv() {
	if v := os.Getenv(EnvDatasetsBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvDatasetsCacheMaxAge); v != "" {
		c.CacheMaxAge = v
	}
}

func (c *DatasetsConfig) validate() error {
	abs, err := filepath.Abs(c.BasePath)
	if err != nil {
		return fmt.Errorf("invalid base_path: %w", err)
	}
	c.BasePath = abs

	age, err := time.ParseDuration(c.CacheMaxAge)
	if err != nil {
		return fmt.Errorf("invalid cache_max_age: %w", err)
	}
	if age < 0 {
		return fmt.Errorf("cache_max_age must not be negative")
	}
	return nil
}
