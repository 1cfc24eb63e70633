// Package api assembles the JSON API module mounted at /api.
package api

import (
	"net/http"

	"github.com/JaimeStill/climate-atlas/internal/config"
	"github.com/JaimeStill/climate-atlas/internal/countries"
	"github.com/JaimeStill/climate-atlas/internal/infrastructure"
	"github.com/JaimeStill/climate-atlas/pkg/middleware"
	"github.com/JaimeStill/climate-atlas/pkg/module"
)

// BasePath is the mount prefix of the API module.
const BasePath = "/api"

// NewModule creates the API module with CORS applied to every route.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure, countriesSys countries.System) *module.Module {
	runtime := NewRuntime(cfg, infra)

	mux := http.NewServeMux()
	registerRoutes(mux, runtime, countriesSys)

	m := module.New(BasePath, mux)
	m.Use(middleware.CORS(&cfg.CORS))

	return m
}
