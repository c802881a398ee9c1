package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movielines/internal/model"
	"github.com/user/movielines/internal/utils"
)

// GetMovie handles GET /movies/:id.
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Aggregator.MovieDetail(id)
	if err != nil {
		renderError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListMovies handles GET /movies/.
func (h *Handler) ListMovies(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}
	sortBy, err := model.ParseMovieSort(q.Sort)
	if err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}
	items, err := h.Lister.ListMovies(q.Name, sortBy, q.Limit, q.Offset)
	if err != nil {
		renderError(c, err, http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, items)
}
