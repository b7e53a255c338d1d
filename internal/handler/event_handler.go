package handler

import (
	"io"

	"gamecatalog/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// StreamEvents godoc
// @Summary      Stream catalog events
// @Description  Server-sent events for game.added and preference.changed.
// @Tags         events
// @Produce      text/event-stream
// @Success      200
// @Router       /events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	client := make(hub.Client, 16)
	h.Hub.Subscribe(client)
	defer h.Hub.Unsubscribe(client)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
