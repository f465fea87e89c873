// Package web holds the server-rendered pages and their static assets,
// embedded into the binary.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"

	"abacus/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutTemplate = "templates/layout.html"

// Pages lists the renderable page templates.
var Pages = []string{
	"index.html",
	"login.html",
	"register.html",
	"dashboard.html",
	"view_calculation.html",
	"edit_calculation.html",
}

// PageData is passed to every page template.
type PageData struct {
	Title  string
	CalcID string
}

// Renderer implements echo.Renderer. Each page is parsed together with the
// shared layout so that pages can redefine the same blocks.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(Pages))
	for _, name := range Pages {
		tmpl, err := template.ParseFS(templateFS, layoutTemplate, path.Join("templates", name))
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

// StaticFS returns the asset tree served under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the embedded directory always exists
	}

	return sub
}
