package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/climate-atlas/internal/countries"
	"github.com/JaimeStill/climate-atlas/web/app"
)

func newHandler(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	h, err := app.NewHandler(app.Config{
		MapsAPIKey: apiKey,
		DataPrefix: "/data",
		Countries:  countries.New(),
	})
	require.NoError(t, err)
	return h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHome(t *testing.T) {
	w := get(newHandler(t, ""), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>Home · Climate Atlas</title>")
	assert.Contains(t, w.Body.String(), `data-page="home"`)
}

func TestMap(t *testing.T) {
	t.Run("injects api key", func(t *testing.T) {
		w := get(newHandler(t, "test-maps-key"), "/map")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-page="map"`)
		assert.Contains(t, w.Body.String(), "maps/api/js?key=test-maps-key")
		assert.Contains(t, w.Body.String(), "/static/js/map.js")
	})

	t.Run("empty api key", func(t *testing.T) {
		w := get(newHandler(t, ""), "/map")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "maps/api/js?key=\"")
	})

	t.Run("escapes api key", func(t *testing.T) {
		w := get(newHandler(t, `"><script>alert(1)</script>`), "/map")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	})
}

func TestCountry(t *testing.T) {
	h := newHandler(t, "")

	t.Run("known", func(t *testing.T) {
		w := get(h, "/country/Kenya")
		body := w.Body.String()

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, body, "<h1>Kenya</h1>")
		assert.Contains(t, body, "High risk")
		assert.Contains(t, body, "#fc8d59")
		assert.Contains(t, body, "Gendered climate impact")
		assert.Contains(t, body, `href="/data/kenya_districts.geojson"`)
	})

	t.Run("unknown renders empty record", func(t *testing.T) {
		w := get(h, "/country/France")
		body := w.Body.String()

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, body, "<h1>France</h1>")
		assert.Contains(t, body, "No climate-vulnerability profile")
		assert.NotContains(t, body, "Gendered climate impact")
	})

	t.Run("case variant redirects", func(t *testing.T) {
		w := get(h, "/country/kenya")

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/country/Kenya", w.Header().Get("Location"))
	})

	t.Run("escapes name", func(t *testing.T) {
		w := get(h, "/country/%3Cscript%3E")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<h1><script>")
	})
}

func TestNotFound(t *testing.T) {
	h := newHandler(t, "")

	for _, path := range []string{"/missing", "/country", "/map/extra"} {
		t.Run(path, func(t *testing.T) {
			w := get(h, path)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "Page not found")
			assert.Contains(t, w.Body.String(), `data-page="404"`)
		})
	}
}

func TestPublicFiles(t *testing.T) {
	h := newHandler(t, "")

	w := get(h, "/robots.txt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User-agent: *")

	w = get(h, "/favicon.svg")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
}

func TestBasePath(t *testing.T) {
	h, err := app.NewHandler(app.Config{
		BasePath:   "/atlas",
		DataPrefix: "/data",
		Countries:  countries.New(),
	})
	require.NoError(t, err)

	w := get(h, "/country/Kenya")
	assert.Contains(t, w.Body.String(), `href="/atlas/static/css/site.css"`)
	assert.Contains(t, w.Body.String(), `href="/atlas/data/kenya_districts.geojson"`)
}

func TestStaticModule(t *testing.T) {
	m := app.NewStaticModule()
	assert.Equal(t, app.StaticPrefix, m.Prefix())

	tests := []struct {
		path       string
		wantStatus int
		wantType   string
	}{
		{"/static/js/map.js", http.StatusOK, "text/javascript; charset=utf-8"},
		{"/static/css/site.css", http.StatusOK, "text/css; charset=utf-8"},
		{"/static/js/missing.js", http.StatusNotFound, ""},
		{"/static/js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			m.Serve(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}
