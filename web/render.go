// Package web renders the HTML fragments the client swaps into place.
// Rendering is a pure function of its input: identical views always
// produce byte-identical markup. Each control in the output declares
// the endpoint it calls and the DOM region the response replaces; that
// wiring is part of this package's output contract, not runtime
// configuration.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/hypertodo/hypertodo/db"
	"github.com/hypertodo/hypertodo/todo"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/style.css
var styleCSS []byte

// Config holds renderer configuration
type Config struct {
	// TemplateDir optionally overrides the embedded templates with an
	// on-disk set, reloadable via Watch. Empty means embedded only.
	TemplateDir string
}

// Renderer turns todo views into HTML fragments
type Renderer struct {
	cfg Config

	mu   sync.RWMutex
	tmpl *template.Template
}

// NewRenderer parses the template set and returns a ready renderer
func NewRenderer(cfg Config) (*Renderer, error) {
	r := &Renderer{cfg: cfg}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses the template set, from the override directory when
// configured and from the embedded copies otherwise. Safe to call
// while renders are in flight.
func (r *Renderer) Reload() error {
	tmpl := template.New("todo")

	var err error
	if r.cfg.TemplateDir != "" {
		tmpl, err = tmpl.ParseGlob(r.cfg.TemplateDir + "/*.html")
	} else {
		tmpl, err = tmpl.ParseFS(templateFS, "templates/*.html")
	}
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()
	return nil
}

func (r *Renderer) execute(name string, data any) (string, error) {
	r.mu.RLock()
	tmpl := r.tmpl
	r.mu.RUnlock()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// footerData is the template context for the list footer
type footerData struct {
	Remaining int
	Completed int
	Filter    string
	OOB       bool
}

// listData is the template context for the full list fragment
type listData struct {
	Items   []db.Todo
	AllDone bool
	Footer  footerData
}

// pageData is the template context for the full page
type pageData struct {
	List listData
}

func newListData(v *todo.ListView) listData {
	return listData{
		Items:   v.Items,
		AllDone: v.AllDone(),
		Footer: footerData{
			Remaining: v.Remaining,
			Completed: v.Completed,
			Filter:    string(v.Filter),
		},
	}
}

// RenderItem renders the self-contained fragment for one todo item
func (r *Renderer) RenderItem(item *db.Todo) (string, error) {
	return r.execute("item", item)
}

// RenderFooter renders the list footer: remaining count, filter
// controls, and the clear-completed button when anything is completed.
// With oob set the fragment carries hx-swap-oob so mutation responses
// can refresh the footer alongside their primary target.
func (r *Renderer) RenderFooter(remaining, completed int, filter todo.Filter, oob bool) (string, error) {
	return r.execute("footer", footerData{
		Remaining: remaining,
		Completed: completed,
		Filter:    string(filter),
		OOB:       oob,
	})
}

// RenderList renders the list container: the filtered items, the
// toggle-all control, and the footer.
func (r *Renderer) RenderList(v *todo.ListView) (string, error) {
	return r.execute("list", newListData(v))
}

// RenderPage renders the full page for GET /
func (r *Renderer) RenderPage(v *todo.ListView) (string, error) {
	return r.execute("page", pageData{List: newListData(v)})
}

// RenderError renders a minimal error fragment. It cannot fail: error
// paths must always have a body to send.
func (r *Renderer) RenderError(message string) string {
	return `<div class="error">` + template.HTMLEscapeString(message) + `</div>`
}

// Stylesheet returns the embedded application stylesheet
func Stylesheet() []byte {
	return styleCSS
}
