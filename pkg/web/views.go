// Package web provides infrastructure for serving server-rendered pages
// from embedded Go templates. Templates are parsed once at startup so a
// missing or malformed template stops the process before it serves.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a view with its route, template file, title, and bundle name.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is the data handed to layout templates. It is derived from a
// ViewDef and the base path only, never from the request.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates keyed by view template name.
type TemplateSet struct {
	views    map[string]*template.Template
	defs     map[string]ViewDef
	basePath string
}

// NewTemplateSet parses the layout templates matching layoutGlob and clones
// them once per view, parsing each view template from viewSubdir.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, fmt.Errorf("open view dir %s: %w", viewSubdir, err)
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	defs := make(map[string]ViewDef, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
		defs[v.Template] = v
	}

	return &TemplateSet{
		views:    viewTemplates,
		defs:     defs,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in every ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data builds the ViewData for a view definition.
func (ts *TemplateSet) Data(view ViewDef) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
	}
}

// Execute renders the named layout for the given view into memory.
func (ts *TemplateSet) Execute(layoutName, viewPath string, data ViewData) ([]byte, error) {
	t, ok := ts.views[viewPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, viewPath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", viewPath, err)
	}
	return buf.Bytes(), nil
}

// ExecuteView renders the layout for a registered view using the ViewData
// derived from its ViewDef.
func (ts *TemplateSet) ExecuteView(layoutName, viewPath string) ([]byte, error) {
	def, ok := ts.defs[viewPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, viewPath)
	}
	return ts.Execute(layoutName, viewPath, ts.Data(def))
}

// WriteHTML writes a rendered body with the given status as text/html.
func WriteHTML(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}
