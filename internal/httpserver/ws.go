package httpserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"henawys-art/internal/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans order updates out to websocket subscribers, keyed by the
// customer phone the order belongs to. Updates are last-write-wins on the
// client side; the hub makes no ordering promise beyond delivery order.
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) register(phone string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[phone] == nil {
		h.conns[phone] = make(map[*websocket.Conn]bool)
	}
	h.conns[phone][conn] = true
}

func (h *Hub) unregister(phone string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[phone], conn)
	if len(h.conns[phone]) == 0 {
		delete(h.conns, phone)
	}
}

// OrderUpdated implements the order service's Notifier. Write failures drop
// the connection; the client reconnects and refetches.
func (h *Hub) OrderUpdated(o domain.Order) {
	payload, err := json.Marshal(o)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[o.Customer.Phone] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns[o.Customer.Phone], conn)
		}
	}
}

func (h *Hub) subscriberCount(phone string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns[phone])
}

func ordersSocketHandler(hub *Hub, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter required"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Printf("ws upgrade error=%v", err)
			return
		}
		defer conn.Close()

		hub.register(phone, conn)
		defer hub.unregister(phone, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
