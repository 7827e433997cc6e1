package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Nomet5/cake-app-sub001/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHub fans admin notifications out to every connected client.
type NotificationHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Notification
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Notification, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast until the process exits.
func (h *NotificationHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish hands a notification to the hub without blocking the caller.
func (h *NotificationHub) Publish(n *entity.Notification) {
	select {
	case h.broadcast <- n:
	default:
		log.Println("ws broadcast buffer full, dropping notification")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // dev only
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. Inbound frames are discarded; the feed is one-way.
func (h *NotificationHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
