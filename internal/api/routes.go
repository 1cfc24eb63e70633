package api

import (
	"net/http"

	"github.com/JaimeStill/climate-atlas/internal/countries"
	"github.com/JaimeStill/climate-atlas/internal/datasets"
	"github.com/JaimeStill/climate-atlas/pkg/handlers"
	"github.com/JaimeStill/climate-atlas/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, runtime *Runtime, countriesSys countries.System) {
	countriesHandler := countries.NewHandler(countriesSys, runtime.Logger)
	datasetsHandler := datasets.NewHandler(runtime.Datasets, runtime.Logger, runtime.DataPrefix, runtime.CacheMaxAge)

	routes.Register(
		mux,
		countriesHandler.Routes(),
		countriesHandler.RiskLevelRoutes(),
		datasetsHandler.Routes(),
	)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
}
