package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movielines/internal/handler"
)

// RegisterRoutes registers the API surface.
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/characters/", h.ListCharacters)
	r.GET("/characters/:id", h.GetCharacter)
	r.GET("/characters/:id/lines", h.CharacterLines)

	r.GET("/movies/", h.ListMovies)
	r.GET("/movies/:id", h.GetMovie)
	r.POST("/movies/:id/conversations/", h.AddConversation)

	r.GET("/lines/conversations/:id", h.ConversationLines)
	r.GET("/lines/:id", h.GetLine)
}
