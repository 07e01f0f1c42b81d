package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// StatusEvent is fanned out to every connected kiosk/dashboard client when a
// teacher checks in or out.
type StatusEvent struct {
	Type        string    `json:"type"` // "checkin" or "checkout"
	TeacherID   uuid.UUID `json:"teacherId"`
	TeacherName string    `json:"teacherName"`
	At          time.Time `json:"at"`
}

type Client struct {
	Conn *websocket.Conn
}

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *StatusEvent, 16)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.Conn] = true
			active := len(clients)
			clientsMu.Unlock()
			log.Printf("Status client connected (%d active)", active)
		case client := <-Unregister:
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			conns := make([]*websocket.Conn, 0, len(clients))
			for conn := range clients {
				conns = append(conns, conn)
			}
			clientsMu.RUnlock()

			for _, conn := range conns {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending status event: %v", err)
					conn.Close()
					clientsMu.Lock()
					delete(clients, conn)
					clientsMu.Unlock()
				}
			}
		}
	}
}

// BroadcastStatus queues an event for fan-out. Events are dropped rather than
// blocking a check-in when the hub is saturated.
func BroadcastStatus(event StatusEvent) {
	select {
	case Broadcast <- &event:
	default:
	}
}
