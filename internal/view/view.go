// Package view renders the HTML pages and htmx fragments of the todo UI.
package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"htmxtodo/internal/model"
)

// Template names.
const (
	Layout   = "layout.html"
	TodoRows = "todo_rows.html"
	TodoForm = "todo_form.html"
	TodoEdit = "todo_edit.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses the embedded templates.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// LayoutData is the page shell. With a token, htmx sends it on every request.
type LayoutData struct {
	Token     string
	HXHeaders string
}

// NewLayoutData builds the page data for token, which may be empty.
func NewLayoutData(token string) (LayoutData, error) {
	if token == "" {
		return LayoutData{}, nil
	}
	headers, err := json.Marshal(map[string]string{echo.HeaderAuthorization: token})
	if err != nil {
		return LayoutData{}, err
	}
	return LayoutData{Token: token, HXHeaders: string(headers)}, nil
}

// TodoRowsData is a list of rows. A non-zero NextPage makes the last row load
// that page when it scrolls into view.
type TodoRowsData struct {
	Todos    []model.Todo
	NextPage int
}

// IsLast reports whether i is the index of the final row.
func (d TodoRowsData) IsLast(i int) bool {
	return i == len(d.Todos)-1
}
