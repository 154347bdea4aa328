package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/hirewire/internal/realtime"
)

// StreamHandler upgrades requests to the per-user live notification channel.
type StreamHandler struct {
	hub *realtime.Hub
}

// NewStreamHandler constructs a stream handler.
func NewStreamHandler(hub *realtime.Hub) (*StreamHandler, error) {
	if hub == nil {
		return nil, errors.New("stream handler: hub is required")
	}
	return &StreamHandler{hub: hub}, nil
}

// Connect upgrades the request and registers the connection under the
// path email. The channel is receive-only from the client's point of view.
func (h *StreamHandler) Connect(c *gin.Context) {
	h.hub.Serve(c.Param("email"), c.Writer, c.Request)
}
