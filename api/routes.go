package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes
func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/", h.Index)

	// Static routes must be registered alongside /todos/:id; gin gives
	// the literal segment precedence, so /todos/completed never
	// resolves to the id parameter.
	r.GET("/todos", h.ListTodos)
	r.POST("/todos", h.CreateTodo)
	r.PATCH("/todos/:id/toggle", h.ToggleTodo)
	r.PATCH("/todos/:id", h.EditTodo)
	r.DELETE("/todos/:id", h.DeleteTodo)
	r.DELETE("/todos/completed", h.ClearCompleted)
	r.POST("/todos/toggle-all", h.ToggleAll)

	r.GET("/static/style.css", h.Stylesheet)
	r.GET("/healthz", h.Health)
}
