package datasets_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/climate-atlas/internal/datasets"
	"github.com/JaimeStill/climate-atlas/pkg/logging"
	"github.com/JaimeStill/climate-atlas/pkg/routes"
)

func newHandler(t *testing.T) *datasets.Handler {
	t.Helper()
	sys, _ := newFixture(t)
	return datasets.NewHandler(sys, logging.Discard(), "/data", 10*time.Minute)
}

func serveFile(h *datasets.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeFile(w, req)
	return w
}

func TestServeFile(t *testing.T) {
	h := newHandler(t)

	w := serveFile(h, http.MethodGet, "/kenya_districts.geojson", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"type":"FeatureCollection","features":[{"type":"Feature"}]}`, w.Body.String())
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=600", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("Last-Modified"))
}

func TestServeFileNested(t *testing.T) {
	h := newHandler(t)

	w := serveFile(h, http.MethodGet, "/indicators/rainfall.csv", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "district,mm\nTurkana,200\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestServeFileRange(t *testing.T) {
	h := newHandler(t)

	w := serveFile(h, http.MethodGet, "/indicators/rainfall.csv", http.Header{"Range": {"bytes=0-7"}})

	assert.Equal(t, http.StatusPartialContent, w.Code)
	assert.Equal(t, "district", w.Body.String())
}

func TestServeFileNotModified(t *testing.T) {
	h := newHandler(t)

	first := serveFile(h, http.MethodGet, "/kenya_districts.geojson", nil)
	require.Equal(t, http.StatusOK, first.Code)

	w := serveFile(h, http.MethodGet, "/kenya_districts.geojson", http.Header{
		"If-Modified-Since": {first.Header().Get("Last-Modified")},
	})
	assert.Equal(t, http.StatusNotModified, w.Code)
}

func TestServeFileRejected(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name string
		path string
	}{
		{"missing", "/uganda_districts.geojson"},
		{"directory", "/indicators"},
		{"empty", "/"},
		{"traversal", "/../secret.txt"},
		{"nested traversal", "/indicators/../../secret.txt"},
		{"encoded traversal", "/..%2fsecret.txt"},
		{"double encoded traversal", "/%2e%2e/secret.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveFile(h, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.NotContains(t, w.Body.String(), "top secret")
		})
	}
}

func TestServeFileMethodNotAllowed(t *testing.T) {
	h := newHandler(t)

	w := serveFile(h, http.MethodPost, "/kenya_districts.geojson", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
}

func TestServeFileHead(t *testing.T) {
	h := newHandler(t)

	w := serveFile(h, http.MethodHead, "/kenya_districts.geojson", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandlerList(t *testing.T) {
	h := newHandler(t)
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/datasets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var entries []datasets.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, "africa_countries.geojson", entries[0].Name)
	assert.Equal(t, "/data/africa_countries.geojson", entries[0].URL)
	assert.Equal(t, "/data/indicators/rainfall.csv", entries[1].URL)
	assert.Equal(t, int64(24), entries[1].Size)
	assert.Equal(t, "24B", entries[1].SizeHuman)
	assert.False(t, entries[2].Modified.IsZero())
}

func TestURL(t *testing.T) {
	h := datasets.NewHandler(nil, logging.Discard(), "/data/", time.Hour)

	assert.Equal(t, "/data/kenya_districts.geojson", h.URL("kenya_districts.geojson"))
	assert.Equal(t, "/data/c%C3%B4te%20d%27ivoire.geojson", h.URL("côte d'ivoire.geojson"))
}
