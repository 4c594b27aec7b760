package websockets

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oseuis57/web-ecovision/util"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan []byte, 32),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if _, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				log.Print("Client disconnected")
			}
			manager.mu.Unlock()

		case message := <-manager.broadcast:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// BroadcastEvent pushes an event to every connected dashboard. The
// feed is notify-only; subscribers re-fetch state through the API.
func (manager *WebSocketManager) BroadcastEvent(event Event) {
	if event.Timestamp == "" {
		event.Timestamp = util.FormatTime(time.RFC3339, time.Now())
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event.Type, err)
		return
	}
	select {
	case manager.broadcast <- payload:
	default:
		log.Printf("dropping %s event: feed backlog full", event.Type)
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn}
	manager.register <- client

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			manager.unregister <- conn
			break
		}
	}
}
