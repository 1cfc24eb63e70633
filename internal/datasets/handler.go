package datasets

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/climate-atlas/pkg/handlers"
	"github.com/JaimeStill/climate-atlas/pkg/routes"
)

var contentTypes = map[string]string{
	".geojson":  "application/geo+json",
	".topojson": "application/json",
	".csv":      "text/csv; charset=utf-8",
}

// Entry is the JSON listing form of a Dataset.
type Entry struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"size_human"`
	Modified  time.Time `json:"modified"`
	URL       string    `json:"url"`
}

type Handler struct {
	sys         System
	logger      *slog.Logger
	urlPrefix   string
	cacheMaxAge time.Duration
}

// NewHandler creates a dataset handler. urlPrefix is the mount point of
// ServeFile ("/data") and is used to build listing URLs.
func NewHandler(sys System, logger *slog.Logger, urlPrefix string, cacheMaxAge time.Duration) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "datasets"),
		urlPrefix:   strings.TrimSuffix(urlPrefix, "/"),
		cacheMaxAge: cacheMaxAge,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/datasets",
		Description: "Geographic data files available under the data directory",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	entries := make([]Entry, 0, len(list))
	for _, d := range list {
		entries = append(entries, Entry{
			Name:      d.Key,
			Size:      d.Size,
			SizeHuman: units.HumanSize(float64(d.Size)),
			Modified:  d.ModTime.UTC(),
			URL:       h.URL(d.Key),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}

// URL returns the request path that serves key.
func (h *Handler) URL(key string) string {
	return h.urlPrefix + (&url.URL{Path: "/" + key}).EscapedPath()
}

// ServeFile serves the dataset named by the request path, which must already
// have the mount prefix removed. Files are returned unchanged with Range and
// conditional request support.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/")
	f, err := h.sys.Open(r.Context(), key)
	if err != nil {
		status := MapHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("dataset open failed", "key", key, "error", err)
		} else {
			h.logger.Debug("dataset rejected", "key", key, "error", err, "status", status)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	defer f.Close()

	if ct, ok := contentTypes[strings.ToLower(path.Ext(f.Key))]; ok {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))

	h.logger.Debug("serving dataset", "key", f.Key, "size", units.HumanSize(float64(f.Size)))
	http.ServeContent(w, r, path.Base(f.Key), f.ModTime, f)
}
