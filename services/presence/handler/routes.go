package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/services/presence/handler/http"
	"github.com/safetrail/safetrail/services/presence/handler/websocket"
)

// Handler coordinates the protocol handlers of the presence service
type Handler struct {
	presenceHTTP *http.PresenceHandler
	presenceWS   *websocket.PresenceHandler
}

// NewHandler creates a new combined handler
func NewHandler(presenceHTTP *http.PresenceHandler, presenceWS *websocket.PresenceHandler) *Handler {
	return &Handler{
		presenceHTTP: presenceHTTP,
		presenceWS:   presenceWS,
	}
}

// RegisterRoutes registers the WebSocket endpoint on e and the HTTP API on api
func (h *Handler) RegisterRoutes(e *echo.Echo, api *echo.Group) {
	e.GET("/ws", h.presenceWS.HandleWebSocket)
	h.presenceHTTP.RegisterRoutes(api)
}
