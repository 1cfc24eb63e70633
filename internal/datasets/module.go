package datasets

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/climate-atlas/pkg/module"
)

// MountPrefix is the URL prefix data files are served under.
const MountPrefix = "/data"

// NewModule creates the module serving data files at MountPrefix.
func NewModule(sys System, logger *slog.Logger, cacheMaxAge time.Duration) *module.Module {
	h := NewHandler(sys, logger.With("module", "data"), MountPrefix, cacheMaxAge)
	return module.New(MountPrefix, http.HandlerFunc(h.ServeFile))
}
