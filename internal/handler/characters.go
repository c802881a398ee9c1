package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/utils"
)

// listQuery carries the shared pagination/filter parameters of both listings.
// Out-of-range values are a client error, never clamped.
type listQuery struct {
	Name   string `form:"name"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=250"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
	Sort   string `form:"sort"`
}

// bindListQuery parses the query string, turning binding failures into a 422.
func bindListQuery(c *gin.Context) (*listQuery, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			utils.UnprocessableEntity(c, fmt.Sprintf("parameter %q failed %q validation",
				fe.Field(), fe.Tag()))
			return nil, false
		}
		utils.UnprocessableEntity(c, "invalid query parameters")
		return nil, false
	}
	return &q, true
}

// GetCharacter handles GET /characters/:id.
func (h *Handler) GetCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Aggregator.CharacterDetail(id)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListCharacters handles GET /characters/.
func (h *Handler) ListCharacters(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	sortBy, err := model.ParseCharacterSort(q.Sort)
	if err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}
	items, err := h.Lister.ListCharacters(q.Name, sortBy, q.Limit, q.Offset)
	if err != nil {
		renderError(c, err, http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CharacterLines handles GET /characters/:id/lines.
func (h *Handler) CharacterLines(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lines, err := h.Reader.CharacterLines(id)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, lines)
}
