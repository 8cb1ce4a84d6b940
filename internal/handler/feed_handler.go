package handler

import (
	"study-canvas-be/internal/pkg/logger"
	internalWS "study-canvas-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// FeedHandler exposes the live canvas event feed over a websocket.
type FeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewFeedHandler(hub *internalWS.Hub, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *FeedHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("FeedHandler", "Canvas feed session started", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("FeedHandler", "Canvas feed session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
