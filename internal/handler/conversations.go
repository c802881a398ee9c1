package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/utils"
)

// AddConversation handles POST /movies/:id/conversations/. Validation
// failures surface as 404 (unknown movie/character, wrong movie) or 400
// (identical endpoints, foreign line speaker); a rejected request inserts
// nothing.
func (h *Handler) AddConversation(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.NewConversation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "invalid request body: "+err.Error())
		return
	}

	convID, err := h.Writer.AddConversation(movieID, &req)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": convID})
}
