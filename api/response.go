package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypertodo/hypertodo/db"
	"github.com/hypertodo/hypertodo/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

// respondFragment sends a rendered HTML fragment with the given status
func respondFragment(c *gin.Context, status int, fragment string) {
	c.Data(status, contentTypeHTML, []byte(fragment))
}

// respondError maps a store error to an HTTP status and a small error
// fragment. This is the only place error kinds become status codes:
// unknown id is 404, rejected input is 422, anything else is a storage
// failure and surfaces as 500.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrTodoNotFound):
		respondFragment(c, http.StatusNotFound, h.render.RenderError("todo not found"))
	case errors.Is(err, db.ErrEmptyTitle):
		respondFragment(c, http.StatusUnprocessableEntity, h.render.RenderError("title must not be empty"))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		respondFragment(c, http.StatusInternalServerError, h.render.RenderError("internal error"))
	}
}

// respondRenderFailure handles renderer errors, which indicate a
// broken template set rather than bad input.
func (h *Handlers) respondRenderFailure(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("render failed")
	respondFragment(c, http.StatusInternalServerError, h.render.RenderError("internal error"))
}
