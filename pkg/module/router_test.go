package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/climate-atlas/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func TestRouter_HandleNative(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	body, _ := io.ReadAll(w.Result().Body)
	assert.Equal(t, "ok", string(body))
}

func TestRouter_MultipleModules(t *testing.T) {
	r := module.NewRouter()

	r.Mount(module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("api"))
	})))
	r.Mount(module.New("/data", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("data"))
	})))
	r.HandleNative("/", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("native"))
	})

	tests := []struct {
		path string
		want string
	}{
		{"/api/countries", "api"},
		{"/data/africa_countries.geojson", "data"},
		{"/map", "native"},
		{"/database", "native"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestRouter_PathNormalization(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))

	tests := []struct {
		name       string
		inputPath  string
		wantPath   string
		wantStatus int
	}{
		{"strips trailing slash", "/api/countries/", "/countries", http.StatusOK},
		{"no change without slash", "/api/countries", "/countries", http.StatusOK},
		{"root unmatched", "/", "", http.StatusNotFound},
		{"module root with slash", "/api/", "/", http.StatusOK},
		{"unknown prefix", "/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.inputPath, nil))

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.wantPath, string(body))
			}
		})
	}
}
