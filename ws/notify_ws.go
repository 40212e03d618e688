package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/mritunjaysukla/RMS/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotifyHub fans service events out to connected staff over WebSocket. It
// implements services.EventSink.
type NotifyHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	events     chan services.Event
	mu         sync.Mutex
}

func NewNotifyHub() *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		events:     make(chan services.Event, 64),
	}
}

// Run owns the client set; register/unregister/broadcast all funnel here.
func (h *NotifyHub) Run() {
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

		case ev := <-h.events:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Deliver enqueues an event for broadcast.
func (h *NotifyHub) Deliver(ev services.Event) error {
	h.events <- ev
	return nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection; auth ran in middleware.
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	go h.listen(conn)
}

// listen drains client frames until disconnect; clients only receive.
func (h *NotifyHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
