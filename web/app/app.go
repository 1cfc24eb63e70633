// Package app provides the climate atlas web pages and front-end assets with
// embedded templates.
package app

import (
	"embed"
	"net/http"
	"net/url"

	"github.com/JaimeStill/climate-atlas/internal/countries"
	"github.com/JaimeStill/climate-atlas/pkg/module"
	"github.com/JaimeStill/climate-atlas/pkg/web"
)

//go:embed static
var staticFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

// StaticPrefix is the mount prefix of the front-end asset module.
const StaticPrefix = "/static"

const layout = "app.html"

var publicFiles = []string{
	"robots.txt",
	"favicon.svg",
}

var (
	homeView    = web.ViewDef{Route: "/{$}", Template: "home.html", Title: "Home", Page: "home"}
	mapView     = web.ViewDef{Route: "/map", Template: "map.html", Title: "Map", Page: "map"}
	countryView = web.ViewDef{Route: "/country/{name}", Template: "country.html", Title: "Country Profile", Page: "country"}
	notFound    = web.ViewDef{Template: "404.html", Title: "Not Found", Page: "404"}
)

var views = []web.ViewDef{homeView, mapView, countryView, notFound}

// Config carries what the pages need from the rest of the service.
type Config struct {
	BasePath   string
	MapsAPIKey string
	DataPrefix string
	Countries  countries.System
}

// MapPage is the Data of the map view.
type MapPage struct {
	APIKey string
}

// CountryPage is the Data of the country view. Found is false for names
// outside the catalog, in which case Country is empty.
type CountryPage struct {
	Name         string
	Country      countries.Country
	Found        bool
	RiskColor    string
	DistrictsURL string
	Sections     []Section
}

// Section is a titled list on the country page.
type Section struct {
	Title string
	Items []string
}

// NewHandler parses the page templates and returns the page router.
// Unmatched requests render the 404 page.
func NewHandler(cfg Config) (http.Handler, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		views,
	)
	if err != nil {
		return nil, err
	}

	return buildRouter(ts, cfg), nil
}

// NewStaticModule creates the module serving embedded CSS and JavaScript.
func NewStaticModule() *module.Module {
	return module.New(StaticPrefix, web.DistServer(staticFS, "static", "/"))
}

func buildRouter(ts *web.TemplateSet, cfg Config) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, notFound, http.StatusNotFound))

	r.HandleFunc("GET "+homeView.Route, ts.PageHandler(layout, homeView))
	r.HandleFunc("GET "+mapView.Route, ts.DataHandler(layout, mapView, func(*http.Request) (any, error) {
		return MapPage{APIKey: cfg.MapsAPIKey}, nil
	}))
	r.HandleFunc("GET "+countryView.Route, countryHandler(ts, cfg))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

// countryHandler renders the country page. A name that differs from a
// catalog key only by case redirects to the catalog spelling.
func countryHandler(ts *web.TemplateSet, cfg Config) http.HandlerFunc {
	render := ts.DataHandler(layout, countryView, func(r *http.Request) (any, error) {
		return newCountryPage(cfg, r.PathValue("name")), nil
	})

	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if canonical, ok := cfg.Countries.Canonical(name); ok && canonical != name {
			target := cfg.BasePath + "/country/" + url.PathEscape(canonical)
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		render(w, r)
	}
}

func newCountryPage(cfg Config, name string) CountryPage {
	c := cfg.Countries.Lookup(name)
	page := CountryPage{
		Name:    name,
		Country: c,
		Found:   !c.IsZero(),
	}
	if !page.Found {
		return page
	}

	page.RiskColor = c.RiskLevel.Color()
	page.DistrictsURL = cfg.BasePath + cfg.DataPrefix + "/" + url.PathEscape(countries.DistrictsKey(c.Name))
	page.Sections = []Section{
		{Title: "Key industries", Items: c.KeyIndustries},
		{Title: "Climate risks", Items: c.ClimateRisks},
		{Title: "Gendered climate impact", Items: c.GenderedClimateImpact},
		{Title: "Vulnerable sectors", Items: c.VulnerableSectors},
		{Title: "Government initiatives", Items: c.GovernmentInitiatives},
		{Title: "International partners", Items: c.InternationalPartners},
		{Title: "Key challenges", Items: c.KeyChallenges},
	}
	return page
}
