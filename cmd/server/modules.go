package main

import (
	"net/http"

	"github.com/JaimeStill/climate-atlas/internal/api"
	"github.com/JaimeStill/climate-atlas/internal/config"
	"github.com/JaimeStill/climate-atlas/internal/datasets"
	"github.com/JaimeStill/climate-atlas/internal/infrastructure"
	"github.com/JaimeStill/climate-atlas/pkg/lifecycle"
	"github.com/JaimeStill/climate-atlas/pkg/module"
	"github.com/JaimeStill/climate-atlas/web/app"
)

type Modules struct {
	API    *module.Module
	Data   *module.Module
	Static *module.Module
	Pages  http.Handler
}

func NewModules(infra *infrastructure.Infrastructure, domain *Domain, cfg *config.Config) (*Modules, error) {
	pages, err := app.NewHandler(app.Config{
		MapsAPIKey: cfg.Maps.APIKey,
		DataPrefix: datasets.MountPrefix,
		Countries:  domain.Countries,
	})
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    api.NewModule(cfg, infra, domain.Countries),
		Data:   datasets.NewModule(infra.Datasets, infra.Logger, cfg.Datasets.CacheMaxAgeDuration()),
		Static: app.NewStaticModule(),
		Pages:  pages,
	}, nil
}

// Mount registers the prefixed modules and routes every other path to the pages.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Data)
	router.Mount(m.Static)
	router.HandleNative("/", m.Pages.ServeHTTP)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", handleHealthCheck)
	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, infra.Lifecycle)
	})

	return router
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
