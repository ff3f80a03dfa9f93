package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hypertodo/hypertodo/todo"
	"github.com/hypertodo/hypertodo/web"
)

// Handlers holds the dependencies of the HTTP layer. The service and
// renderer are passed in explicitly; nothing here reaches for globals.
type Handlers struct {
	svc    *todo.Service
	render *web.Renderer
}

// New creates the handler set
func New(svc *todo.Service, render *web.Renderer) *Handlers {
	return &Handlers{svc: svc, render: render}
}

// requestFilter reads the view filter from the query string.
// Unknown values fall back to showing everything.
func requestFilter(c *gin.Context) todo.Filter {
	return todo.ParseFilter(c.Query("filter"))
}

// todoID validates the id path parameter. Ids are UUIDs; anything that
// does not parse cannot exist in the store, so it is a 404 without a
// store round-trip.
func (h *Handlers) todoID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondFragment(c, http.StatusNotFound, h.render.RenderError("todo not found"))
		return "", false
	}
	return id, true
}

// Index handles GET / and renders the full page
func (h *Handlers) Index(c *gin.Context) {
	view, err := h.svc.List(requestFilter(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	page, err := h.render.RenderPage(view)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, page)
}

// ListTodos handles GET /todos and returns the list fragment for the
// requested filter.
func (h *Handlers) ListTodos(c *gin.Context) {
	view, err := h.svc.List(requestFilter(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	fragment, err := h.render.RenderList(view)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, fragment)
}

// CreateTodo handles POST /todos. A successful create returns the full
// list fragment so the new item and the remaining count land in one
// swap of the list container.
func (h *Handlers) CreateTodo(c *gin.Context) {
	view, err := h.svc.Create(c.PostForm("title"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	fragment, err := h.render.RenderList(view)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusCreated, fragment)
}

// ToggleTodo handles PATCH /todos/:id/toggle. The response replaces
// the item in place and refreshes the footer out of band so the
// remaining count stays consistent.
func (h *Handlers) ToggleTodo(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	view, err := h.svc.Toggle(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	item, err := h.render.RenderItem(view.Item)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	footer, err := h.render.RenderFooter(view.Remaining, view.Completed, requestFilter(c), true)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, item+footer)
}

// EditTodo handles PATCH /todos/:id and returns the updated item
// fragment.
func (h *Handlers) EditTodo(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	view, err := h.svc.Edit(id, c.PostForm("title"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	fragment, err := h.render.RenderItem(view.Item)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, fragment)
}

// DeleteTodo handles DELETE /todos/:id. The body carries only an
// out-of-band footer refresh; the swap target itself receives nothing,
// which removes the element client-side.
func (h *Handlers) DeleteTodo(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	view, err := h.svc.Delete(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	footer, err := h.render.RenderFooter(view.Remaining, view.Completed, requestFilter(c), true)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, footer)
}

// ClearCompleted handles DELETE /todos/completed and returns the
// refreshed list fragment.
func (h *Handlers) ClearCompleted(c *gin.Context) {
	view, err := h.svc.ClearCompleted(requestFilter(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	fragment, err := h.render.RenderList(view)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, fragment)
}

// ToggleAll handles POST /todos/toggle-all and returns the refreshed
// list fragment.
func (h *Handlers) ToggleAll(c *gin.Context) {
	view, err := h.svc.ToggleAll(requestFilter(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	fragment, err := h.render.RenderList(view)
	if err != nil {
		h.respondRenderFailure(c, err)
		return
	}
	respondFragment(c, http.StatusOK, fragment)
}

// Stylesheet handles GET /static/style.css
func (h *Handlers) Stylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400, must-revalidate")
	c.Data(http.StatusOK, "text/css; charset=utf-8", web.Stylesheet())
}

// Health handles GET /healthz
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
