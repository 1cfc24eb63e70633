package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/JaimeStill/climate-atlas/pkg/routes"
)

const staticCacheControl = "public, max-age=3600"

// DistServer serves files from subdir of fsys, stripping prefix from the
// request path. Directories and missing files respond 404.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		name = strings.TrimPrefix(path.Clean("/"+name), "/")
		if name == "" || name == "." {
			http.NotFound(w, r)
			return
		}
		serveFS(w, r, sub, name)
	}
}

// PublicFile returns a handler serving a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveFS(w, r, fsys, path.Join(subdir, name))
	}
}

// PublicFileRoutes generates a root-level GET route for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []routes.Route {
	result := make([]routes.Route, 0, len(files))
	for _, name := range files {
		result = append(result, routes.Route{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return result
}

// ServeEmbeddedFile returns a handler writing data with contentType.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

func serveFS(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var modTime time.Time
	if info, err := fs.Stat(fsys, name); err == nil {
		modTime = info.ModTime()
	}

	w.Header().Set("Cache-Control", staticCacheControl)
	http.ServeContent(w, r, path.Base(name), modTime, bytes.NewReader(data))
}
