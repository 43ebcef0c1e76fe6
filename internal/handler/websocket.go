package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/websocket"
)

// WebSocketHandler upgrades connections for schedule event streaming
type WebSocketHandler struct {
	hub *websocket.Hub
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(hub *websocket.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Serve upgrades the HTTP connection to a websocket
// @Summary WebSocket de eventos de cronograma
// @Description Recebe um evento sempre que um novo cronograma é gerado
// @Tags websocket
// @Router /ws [get]
func (h *WebSocketHandler) Serve(c *gin.Context) {
	websocket.ServeWS(h.hub, c.Writer, c.Request)
}
