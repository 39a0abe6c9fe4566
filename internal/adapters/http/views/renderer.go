// Package views renders the site's HTML pages.
//
// Templates are embedded from templates/. Every page template is parsed
// together with layout.tmpl and partials.tmpl and executed through the
// "layout" template, which calls the page's "content" block. The Presenter
// builds the view models the templates consume.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PagePage     = "page"
	PageBlog     = "blog"
	PagePost     = "post"
	PageProducts = "products"
	PageProduct  = "product"
	PageError    = "error"
)

var pageNames = []string{PageHome, PagePage, PageBlog, PagePost, PageProducts, PageProduct, PageError}

// Renderer executes the page templates.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	partials, err := template.New("partials.tmpl").ParseFS(templatesFS, "templates/partials.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	r := &Renderer{
		pages:    make(map[string]*template.Template, len(pageNames)),
		partials: partials,
	}
	for _, name := range pageNames {
		t, err := template.New("layout.tmpl").ParseFS(templatesFS,
			"templates/layout.tmpl",
			"templates/partials.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes a page into a buffer and writes it with status. Nothing
// is written when execution fails, so the caller can still send an error
// page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute %s template: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s page: %w", page, err)
	}
	return nil
}

// Fragment executes a partial template into HTML.
func (r *Renderer) Fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.partials.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
