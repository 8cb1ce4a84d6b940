package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"study-canvas-be/internal/pkg/logger"
	"study-canvas-be/pkg/events"

	"github.com/redis/go-redis/v9"
)

// canvasChannel is the redis pub/sub channel used to fan events out to
// other instances.
const canvasChannel = "canvas_events"

// Hub tracks every open canvas feed and pushes entity change events to all
// of them. The canvas is a shared surface: every event goes to every client.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out; nil in single-instance mode.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Canvas client connected", map[string]interface{}{
				"clients": len(h.clients),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEvent implements service.CanvasBroadcaster.
func (h *Hub) BroadcastEvent(evt events.Event) {
	data, err := json.Marshal(map[string]interface{}{
		"type":        evt.EventType(),
		"data":        evt.Payload(),
		"occurred_at": evt.Timestamp(),
	})
	if err != nil {
		h.logger.Warn("Hub", "Failed to serialize event", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
		return
	}

	h.broadcastLocal(data)

	// Other instances deliver to their own clients.
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), canvasChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to publish event to redis", map[string]interface{}{
				"event": evt.EventType(),
				"error": err.Error(),
			})
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", nil)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, canvasChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.broadcastLocal([]byte(msg.Payload))
	}
}
