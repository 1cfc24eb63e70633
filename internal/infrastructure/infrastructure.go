// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (lifecycle, logging, data directory) that
// domain systems and modules require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/climate-atlas/internal/config"
	"github.com/JaimeStill/climate-atlas/internal/datasets"
	"github.com/JaimeStill/climate-atlas/pkg/lifecycle"
	"github.com/JaimeStill/climate-atlas/pkg/logging"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Datasets  datasets.System
}

// New creates an Infrastructure from the application configuration, logging to stdout.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger creates an Infrastructure that uses the provided logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	ds, err := datasets.New(&cfg.Datasets, logger)
	if err != nil {
		return nil, fmt.Errorf("datasets init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Datasets:  ds,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Datasets.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("datasets start failed: %w", err)
	}
	return nil
}

// Scoped returns a copy of the infrastructure whose logger carries module.
func (i *Infrastructure) Scoped(module string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With("module", module),
		Datasets:  i.Datasets,
	}
}
