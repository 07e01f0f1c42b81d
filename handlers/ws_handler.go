package handlers

import (
	websocketcontrib "github.com/gofiber/contrib/websocket"

	"github.com/madiharazzak/WEIC-Time-Tracking/websocket"
)

// ServeStatusWS keeps a dashboard connection subscribed to live check-in and
// check-out events until the client disconnects.
func ServeStatusWS(c *websocketcontrib.Conn) {
	client := &websocket.Client{Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
