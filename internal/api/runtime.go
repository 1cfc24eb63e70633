package api

import (
	"time"

	"github.com/JaimeStill/climate-atlas/internal/config"
	"github.com/JaimeStill/climate-atlas/internal/datasets"
	"github.com/JaimeStill/climate-atlas/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	DataPrefix  string
	CacheMaxAge time.Duration
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: infra.Scoped("api"),
		DataPrefix:     datasets.MountPrefix,
		CacheMaxAge:    cfg.Datasets.CacheMaxAgeDuration(),
	}
}
