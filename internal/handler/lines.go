package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLine handles GET /lines/:id.
func (h *Handler) GetLine(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Reader.LineDetail(id)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ConversationLines handles GET /lines/conversations/:id.
func (h *Handler) ConversationLines(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lines, err := h.Reader.ConversationLines(id)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, lines)
}
