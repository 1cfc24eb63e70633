package web_test

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/climate-atlas/pkg/web"
)

//go:embed testdata/static
var staticFS embed.FS

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/static/")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"nested file", "/static/js/app.js", http.StatusOK, "console.log"},
		{"root file", "/static/test.txt", http.StatusOK, "test file content"},
		{"missing file", "/static/js/missing.js", http.StatusNotFound, ""},
		{"directory", "/static/js", http.StatusNotFound, ""},
		{"empty name", "/static/", http.StatusNotFound, ""},
		{"traversal", "/static/../static/js/../../views_test.go", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
				assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestPublicFile(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "test.txt")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/test.txt", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test file content")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestPublicFileMissing(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "missing.txt")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/missing.txt", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "js/app.js")
	require.Len(t, routes, 2)

	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/test.txt", routes[0].Pattern)
	assert.Equal(t, "/js/app.js", routes[1].Pattern)

	w := httptest.NewRecorder()
	routes[1].Handler(w, httptest.NewRequest(http.MethodGet, "/js/app.js", nil))
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestServeEmbeddedFile(t *testing.T) {
	handler := web.ServeEmbeddedFile([]byte("User-agent: *"), "text/plain; charset=utf-8")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "User-agent: *", w.Body.String())
}
