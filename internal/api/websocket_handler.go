package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/service/pubsub"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// WebSocketHandler streams accepted submissions to operator dashboards.
// Broadcasts go through Redis pub/sub so every API instance sees
// submissions accepted by its peers.
type WebSocketHandler struct {
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.RWMutex
	logger        *logger.Logger
	pubsub        *pubsub.RedisPubSub
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int // Count of clients per tenant
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
		pubsub:        pubsub,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{Error: "Not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenant.ID,
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++

			// Subscribe to the tenant's channel on the first client
			if h.tenantClients[client.tenantID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.tenantID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to tenant %s: %v", client.tenantID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.tenantClients[client.tenantID]--
				if h.tenantClients[client.tenantID] == 0 {
					h.pubsub.Unsubscribe(client.tenantID)
					delete(h.tenantClients, client.tenantID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

func (h *WebSocketHandler) handlePubSubMessage(event *dto.SubmissionEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling submission event: %v", err)
		return
	}

	var slow []*Client

	h.mutex.RLock()
	for client := range h.clients {
		if client.tenantID != event.TenantID {
			continue
		}
		select {
		case client.send <- message:
		default: // Channel is full, evict the client below
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	if len(slow) == 0 {
		return
	}

	// Eviction mutates the client maps, which needs the write lock; another
	// tenant's subscription goroutine may be broadcasting concurrently.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for _, client := range slow {
		if _, ok := h.clients[client]; !ok {
			continue
		}
		close(client.send)
		delete(h.clients, client)

		h.tenantClients[client.tenantID]--
		if h.tenantClients[client.tenantID] == 0 {
			h.pubsub.Unsubscribe(client.tenantID)
			delete(h.tenantClients, client.tenantID)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.tenantID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.tenantID, err)
			}
			break
		}

		// Clients are not expected to send anything
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.tenantID, string(message))
		}
	}
}

// BroadcastSubmission publishes an accepted submission to every operator
// client of the tenant, across API instances.
func (h *WebSocketHandler) BroadcastSubmission(event *dto.SubmissionEvent) {
	if err := h.pubsub.Publish(h.ctx, event); err != nil {
		h.logger.Errorf("Failed to publish submission event: %v", err)
	}
}
