package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/movielines/internal/config"
	"github.com/user/movielines/internal/repository"
	"github.com/user/movielines/internal/service"
	"github.com/user/movielines/internal/utils"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	Config     *config.Config
	Aggregator *service.Aggregator
	Lister     *service.Lister
	Writer     *service.Writer
	Reader     *service.Reader
}

// NewHandler wires the services over the given store.
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return NewHandlerWithStore(repos.Store, cfg)
}

// NewHandlerWithStore wires the services over any Store implementation; tests
// use it with a seeded MemStore.
func NewHandlerWithStore(store repository.Store, cfg *config.Config) *Handler {
	agg := service.NewAggregator(store, cfg.CacheTTL)
	lister := service.NewLister(store, cfg.CacheSize, cfg.CacheTTL)

	return &Handler{
		Config:     cfg,
		Aggregator: agg,
		Lister:     lister,
		Writer:     service.NewWriter(store, agg, lister),
		Reader:     service.NewReader(store),
	}
}

// pathID parses a positive integer path parameter. A malformed id is reported
// as 422, matching the parameter-validation contract of the listing params.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.UnprocessableEntity(c, name+" must be an integer")
		return 0, false
	}
	return id, true
}

// renderError translates service errors. Invalid arguments surface with the
// given status: 400 on the write path, 422 for listing parameters.
func renderError(c *gin.Context, err error, invalidStatus int) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		utils.Error(c, invalidStatus, err.Error())
	default:
		log.Printf("[handler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.InternalServerError(c, "")
	}
}
