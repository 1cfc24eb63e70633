// Package web provides infrastructure for serving web pages with Go templates.
// Templates are parsed once at startup and views are declared as data, so
// route registration is generated from the view list.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a view with its route, template file, title, and page key.
// Page identifies the view to layouts (navigation state, page scripts).
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Page     string
}

// ViewData contains the data passed to templates during rendering.
// BasePath enables portable URL generation via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Page     string
	BasePath string
	Data     any
}

// DataFunc loads the view-specific Data for a request.
type DataFunc func(r *http.Request) (any, error)

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them once
// per view, parsing the view template from viewSubdir into each clone.
// A missing or malformed template fails here rather than at request time.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	set := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		set[v.Template] = t
	}

	return &TemplateSet{
		views:    set,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path injected into every ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler returns a handler that renders a static view.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return ts.DataHandler(layout, view, nil)
}

// DataHandler returns a handler that renders view with data produced by load.
// A nil load renders the view without Data.
func (ts *TemplateSet) DataHandler(layout string, view ViewDef, load DataFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.viewData(view)
		if load != nil {
			d, err := load(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data.Data = d
		}
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns a handler that renders view with the given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ts.views[view.Template]
		if !ok {
			http.Error(w, http.StatusText(status), status)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		t.ExecuteTemplate(w, layout, ts.viewData(view))
	}
}

// Render executes the named layout for the view template with data.
// Output is buffered so a failed execution writes nothing to w.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, viewTemplate string, data ViewData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", viewTemplate, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

func (ts *TemplateSet) viewData(view ViewDef) ViewData {
	return ViewData{
		Title:    view.Title,
		Page:     view.Page,
		BasePath: ts.basePath,
	}
}
