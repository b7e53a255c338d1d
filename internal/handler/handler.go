package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gamecatalog/backend/internal/apperr"
	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/preferences"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Handler serves the catalog core over HTTP.
type Handler struct {
	Catalog     *catalog.Catalog
	Preferences *preferences.Preferences
	Hub         *hub.Hub
}

// New creates a Handler.
func New(c *catalog.Catalog, p *preferences.Preferences, h *hub.Hub) *Handler {
	return &Handler{Catalog: c, Preferences: p, Hub: h}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	games := r.Group("/games")
	{
		games.GET("", h.GetGames)
		games.POST("", h.CreateGame)
		games.GET("/:id", h.GetGameByID)
	}

	r.GET("/genres", h.GetGenres)

	prefs := r.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.PUT("/:name", h.SetPreference)
	}

	r.GET("/ui", h.GetUIConfig)
	if h.Hub != nil {
		r.GET("/events", h.StreamEvents)
	}
}

// abortWithError maps core errors to HTTP responses.
func abortWithError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, preferences.ErrUnknownFlag):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotInitialized):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog is not ready"})
	default:
		slog.Error("handler: request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
